package contiguous

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// KeyFunc extracts the ordering key from an element.
//
// A key function must be pure and deterministic: the same element always
// yields the same key, with no side effects. The engine cannot verify this;
// a key function that violates it leaves the sequence's behavior undefined.
type KeyFunc[T any, K cmp.Ordered] func(item T) K

// Pair is a (key, value) element for sequences whose keys are not stored
// inside the payload. Use it with PairKey.
type Pair[K cmp.Ordered, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// PairKey is the key function for Pair elements: it returns the Key field.
func PairKey[K cmp.Ordered, V any](p Pair[K, V]) K { return p.Key }

// OrdVec is a slice of elements kept permanently sorted in ascending order by
// a key derived from each element via a KeyFunc.
//
// Restrictions:
//   - No two elements may share a key. Operations that would introduce a
//     duplicate report *ErrDuplicateKey.
//   - An element's key must not change while the element is in the sequence.
//     The only sanctioned way to re-key resident elements is RetainMap.
//
// The zero value is not usable; create instances with New, FromUnsorted or
// Collect. Not safe for concurrent use.
type OrdVec[T any, K cmp.Ordered] struct {
	key   KeyFunc[T, K]
	items []T
}

// New creates an empty OrdVec governed by the given key function.
func New[T any, K cmp.Ordered](key KeyFunc[T, K]) *OrdVec[T, K] {
	return &OrdVec[T, K]{key: key}
}

// FromUnsorted creates an OrdVec by taking ownership of the given slice,
// sorting it by key and validating that no two elements share a key.
// The caller must not use the slice afterwards.
func FromUnsorted[T any, K cmp.Ordered](key KeyFunc[T, K], items []T) (*OrdVec[T, K], error) {
	v := &OrdVec[T, K]{key: key, items: items}
	if err := v.sortAndValidate(); err != nil {
		return nil, err
	}
	return v, nil
}

// MustFromUnsorted is like FromUnsorted but panics on duplicate keys.
func MustFromUnsorted[T any, K cmp.Ordered](key KeyFunc[T, K], items []T) *OrdVec[T, K] {
	v, err := FromUnsorted(key, items)
	if err != nil {
		panic(err)
	}
	return v
}

// Collect creates an OrdVec from an iterator, delegating to the same
// sort-and-validate path as FromUnsorted.
func Collect[T any, K cmp.Ordered](key KeyFunc[T, K], seq iter.Seq[T]) (*OrdVec[T, K], error) {
	return FromUnsorted(key, slices.Collect(seq))
}

// Len returns the number of elements.
func (v *OrdVec[T, K]) Len() int { return len(v.items) }

// IsEmpty reports whether the sequence contains no elements.
func (v *OrdVec[T, K]) IsEmpty() bool { return len(v.items) == 0 }

// IndexOfKey returns the position of the element with the given key, or
// (insertion position, false) if no such element exists. O(log n).
func (v *OrdVec[T, K]) IndexOfKey(k K) (int, bool) {
	return slices.BinarySearchFunc(v.items, k, func(item T, target K) int {
		return cmp.Compare(v.key(item), target)
	})
}

// GetByKey returns a copy of the element with the given key.
func (v *OrdVec[T, K]) GetByKey(k K) (T, bool) {
	if i, ok := v.IndexOfKey(k); ok {
		return v.items[i], true
	}
	var zero T
	return zero, false
}

// GetMutByKey returns a pointer to the element with the given key, or nil if
// no such element exists.
//
// The pointer is valid until the next mutating operation. The caller must not
// modify the element in a way that changes its key; use RetainMap to re-key
// resident elements.
func (v *OrdVec[T, K]) GetMutByKey(k K) *T {
	if i, ok := v.IndexOfKey(k); ok {
		return &v.items[i]
	}
	return nil
}

// Insert adds a new element, keeping the sequence sorted. If an element with
// the same key already exists, Insert reports *ErrDuplicateKey and leaves the
// sequence unchanged.
//
// Appending is O(1) amortized when keys arrive in ascending order (the common
// case for id- or time-ordered ingestion); otherwise the insertion point is
// located in O(log n) and the tail shifted in O(n).
func (v *OrdVec[T, K]) Insert(item T) error {
	k := v.key(item)
	if n := len(v.items); n == 0 || v.key(v.items[n-1]) < k {
		v.items = append(v.items, item)
		return nil
	}
	i, found := v.IndexOfKey(k)
	if found {
		return &ErrDuplicateKey{Key: k}
	}
	v.items = slices.Insert(v.items, i, item)
	return nil
}

// RemoveByKey removes the element with the given key and returns it, or
// (zero, false) if no such element exists. The order of the remaining
// elements is preserved.
func (v *OrdVec[T, K]) RemoveByKey(k K) (T, bool) {
	i, found := v.IndexOfKey(k)
	if !found {
		var zero T
		return zero, false
	}
	item := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)
	return item, true
}

// RetainMap applies f to every element exactly once. If f returns
// (replacement, true) the element is kept, possibly with a different key —
// this is the only sanctioned way to change a resident element's key. If f
// returns (_, false) the element is dropped. Afterwards the survivors are
// re-sorted and re-validated for key uniqueness.
//
// The visitation order is explicitly NOT key order: elements are extracted
// with a swap-to-end compaction, so callers may rely only on "exactly once
// per original element". Each element is passed to f by value; f takes
// ownership for the duration of the call. If f panics, the sequence is left
// in an unspecified but memory-safe state.
//
// If the transform produces duplicate keys, RetainMap empties the sequence
// and reports *ErrDuplicateKey: the pre-transform state cannot be restored
// because f has already consumed the elements.
func (v *OrdVec[T, K]) RetainMap(f func(item T) (T, bool)) error {
	orig := len(v.items)
	items := v.items
	i := 0
	for i < len(items) {
		// Swap-remove: O(1) extraction at the cursor, the last live element
		// backfills the hole.
		item := items[i]
		last := len(items) - 1
		items[i] = items[last]
		items = items[:last]

		repl, keep := f(item)
		if !keep {
			continue
		}
		if i < len(items) {
			displaced := items[i]
			items[i] = repl
			items = append(items, displaced)
		} else {
			items = append(items, repl)
		}
		i++
	}
	// Release the slots vacated by dropped elements.
	clear(v.items[len(items):orig])
	v.items = items
	if err := v.sortAndValidate(); err != nil {
		clear(v.items)
		v.items = v.items[:0]
		return err
	}
	return nil
}

// Items returns the underlying slice, ordered ascending by key. It is a view,
// not a copy: the caller must treat it as read-only and must not retain it
// across mutating operations.
func (v *OrdVec[T, K]) Items() []T { return v.items }

// At returns the element at position i. Panics if i is out of range.
func (v *OrdVec[T, K]) At(i int) T { return v.items[i] }

// All returns an iterator over the elements in ascending key order.
func (v *OrdVec[T, K]) All() iter.Seq[T] {
	return slices.Values(v.items)
}

// Clone returns a copy of the sequence sharing the key function but not the
// backing storage.
func (v *OrdVec[T, K]) Clone() *OrdVec[T, K] {
	return &OrdVec[T, K]{key: v.key, items: slices.Clone(v.items)}
}

// Equal reports whether two sequences contain equal elements in the same
// order. The key functions are not compared.
func Equal[T comparable, K cmp.Ordered](a, b *OrdVec[T, K]) bool {
	return slices.Equal(a.items, b.items)
}

func (v *OrdVec[T, K]) String() string {
	return fmt.Sprintf("%v", v.items)
}

// sortAndValidate restores the order invariant and checks key uniqueness.
// Unstable sort is fine: no two equal-key elements may coexist afterwards.
func (v *OrdVec[T, K]) sortAndValidate() error {
	slices.SortFunc(v.items, func(a, b T) int {
		return cmp.Compare(v.key(a), v.key(b))
	})
	for i := 1; i < len(v.items); i++ {
		if k := v.key(v.items[i]); k == v.key(v.items[i-1]) {
			return &ErrDuplicateKey{Key: k}
		}
	}
	return nil
}
