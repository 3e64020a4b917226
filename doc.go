// Package contiguous provides collections backed by flat contiguous arrays.
//
// The collections trade growth flexibility and concurrent mutation for
// predictable memory layout and fast key lookup:
//
//   - OrdVec: a slice of elements kept permanently sorted by a key derived
//     from each element, with O(log n) lookup, duplicate-key rejection and a
//     single-pass bulk transform (RetainMap).
//   - Array2: a fixed-size two-dimensional array stored as a flat slice in
//     row-major order.
//
// # Quick Start
//
//	type User struct {
//	    UID  int    `json:"uid"`
//	    Name string `json:"name"`
//	}
//
//	byUID, _ := contiguous.FromUnsorted(func(u User) int { return u.UID }, []User{
//	    {UID: 1, Name: "Maya"},
//	    {UID: 0, Name: "Ben"},
//	    {UID: 2, Name: "Ariel"},
//	})
//	u, ok := byUID.GetByKey(1) // {1 Maya}, true
//
// Several independent key functions may be used over the same element type,
// each yielding a differently ordered sequence.
//
// # Serialization
//
// The collections serialize as plain ordered element arrays. Decoding never
// trusts its input: deserialized data is re-sorted and re-validated through
// the same path as FromUnsorted, so unsorted or duplicate-laden input is
// detected rather than silently accepted. Codec selection (JSON, go-json,
// compressed variants) lives in the codec subpackage.
//
// # Concurrency
//
// The collections are not safe for concurrent use. They are single-threaded
// by design; wrap them in external synchronization if shared across
// goroutines.
package contiguous
