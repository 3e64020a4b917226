package contiguous

import (
	"encoding/json"

	"github.com/hupe1980/contiguous/codec"
)

// MarshalJSON encodes the sequence as a plain ordered element array. The
// sortedness invariant needs no extra framing: it is re-established on
// decode.
func (v *OrdVec[T, K]) MarshalJSON() ([]byte, error) {
	items := v.items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes an element array into the sequence, replacing its
// contents. The input is never trusted to be sorted or duplicate-free: it
// runs through the same sort-and-validate path as FromUnsorted, so externally
// supplied data cannot break the invariants. On *ErrDuplicateKey the sequence
// is left empty.
//
// The receiver must have been created with New (or another constructor) so
// the key function is set; otherwise ErrNoKeyFunc is returned.
func (v *OrdVec[T, K]) UnmarshalJSON(data []byte) error {
	if v.key == nil {
		return ErrNoKeyFunc
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	v.items = items
	if err := v.sortAndValidate(); err != nil {
		v.items = nil
		return err
	}
	return nil
}

// EncodeWith encodes the sequence's elements with the given codec. A nil
// codec selects codec.Default.
func (v *OrdVec[T, K]) EncodeWith(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	items := v.items
	if items == nil {
		items = []T{}
	}
	return c.Marshal(items)
}

// DecodeWith decodes an element array with the given codec, replacing the
// sequence's contents through the same sort-and-validate path as
// UnmarshalJSON. A nil codec selects codec.Default.
func (v *OrdVec[T, K]) DecodeWith(c codec.Codec, data []byte) error {
	if v.key == nil {
		return ErrNoKeyFunc
	}
	if c == nil {
		c = codec.Default
	}
	var items []T
	if err := c.Unmarshal(data, &items); err != nil {
		return err
	}
	v.items = items
	if err := v.sortAndValidate(); err != nil {
		v.items = nil
		return err
	}
	return nil
}
