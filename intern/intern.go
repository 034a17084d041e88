// Package intern provides a dense-ID string interner and a Roaring
// Bitmap-backed ID set. Consumers that index items by alternate string
// specifiers intern the specifiers once and run membership tests on the
// compact IDs instead of the strings.
package intern

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Interner assigns dense uint32 IDs to strings, starting at 0. IDs are
// stable for the lifetime of the Interner and never reused.
type Interner struct {
	ids  map[string]uint32
	strs []string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{
		ids: make(map[string]uint32),
	}
}

// Intern returns the ID for s, assigning the next dense ID on first sight.
func (in *Interner) Intern(s string) uint32 {
	if id, ok := in.ids[s]; ok {
		return id
	}

	id := uint32(len(in.strs))
	in.ids[s] = id
	in.strs = append(in.strs, s)

	return id
}

// Lookup returns the ID previously assigned to s. ok=false if s was never
// interned.
func (in *Interner) Lookup(s string) (uint32, bool) {
	id, ok := in.ids[s]
	return id, ok
}

// String returns the string behind id. ok=false for unassigned IDs.
func (in *Interner) String(id uint32) (string, bool) {
	if int(id) >= len(in.strs) {
		return "", false
	}

	return in.strs[id], true
}

// Len returns the number of interned strings.
func (in *Interner) Len() int {
	return len(in.strs)
}

// IDSet is a set of interned IDs backed by a 32-bit Roaring Bitmap.
type IDSet struct {
	rb *roaring.Bitmap
}

// NewIDSet creates a new empty IDSet.
func NewIDSet() *IDSet {
	return &IDSet{
		rb: roaring.New(),
	}
}

// Add adds an ID to the set.
func (s *IDSet) Add(id uint32) {
	s.rb.Add(id)
}

// Remove removes an ID from the set.
func (s *IDSet) Remove(id uint32) {
	s.rb.Remove(id)
}

// Contains checks if an ID is in the set.
func (s *IDSet) Contains(id uint32) bool {
	return s.rb.Contains(id)
}

// IsEmpty returns true if the set is empty.
func (s *IDSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of IDs in the set.
func (s *IDSet) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *IDSet) Clone() *IDSet {
	return &IDSet{
		rb: s.rb.Clone(),
	}
}

// And computes the intersection with other in place.
func (s *IDSet) And(other *IDSet) {
	s.rb.And(other.rb)
}

// Or computes the union with other in place.
func (s *IDSet) Or(other *IDSet) {
	s.rb.Or(other.rb)
}

// Clear removes all IDs from the set.
func (s *IDSet) Clear() {
	s.rb.Clear()
}

// All iterates the IDs in ascending order.
func (s *IDSet) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
