package bitlist

import (
	"iter"
	"math/bits"
	"slices"
	"strings"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// wordsFor returns the number of uint64 words needed to hold n bits.
func wordsFor(n int) int {
	return (n + wordMask) >> wordShift
}

// BitArrayList is a growable, ordered sequence of bits backed by uint64
// words. Logical bit i lives in words[i>>6] at mask 1<<(i&63).
//
// Invariant: len(words) == (length+63)/64 between operations, so the storage
// holds exactly enough words for the live bits. Bits above length in the last
// word are padding and never interpreted.
type BitArrayList struct {
	words  []uint64
	length int
}

// New creates an empty BitArrayList. No storage is allocated until the first
// Push.
func New() *BitArrayList {
	return &BitArrayList{}
}

// From creates a BitArrayList from raw storage words and a bit length. The
// words slice is cloned, never retained. It returns an ErrLengthMismatch
// unless length is non-negative and len(words) is exactly the number of words
// needed to hold length bits.
func From(words []uint64, length int) (*BitArrayList, error) {
	if length < 0 || len(words) != wordsFor(length) {
		return nil, &ErrLengthMismatch{Words: len(words), Length: length}
	}
	return &BitArrayList{
		words:  slices.Clone(words),
		length: length,
	}, nil
}

// Len returns the number of bits in the list.
func (l *BitArrayList) Len() int {
	return l.length
}

// IsEmpty returns true if the list holds no bits.
func (l *BitArrayList) IsEmpty() bool {
	return l.length == 0
}

// Push appends a bit to the back of the list. A new zero word is allocated
// only when the last word is full, so the amortized cost is O(1).
//
// The target position is written explicitly for both values: padding left in
// the last word by From or Pop must not leak into a pushed zero.
func (l *BitArrayList) Push(bit bool) {
	idx := l.length >> wordShift
	if idx == len(l.words) {
		l.words = append(l.words, 0)
	}
	mask := uint64(1) << (l.length & wordMask)
	if bit {
		l.words[idx] |= mask
	} else {
		l.words[idx] &^= mask
	}
	l.length++
}

// Dequeue removes and returns the bit at the front of the list (FIFO). Every
// remaining bit shifts down one logical position via a word-wise carry, so
// the cost is O(n/64) rather than O(n) single-bit moves. It returns ErrEmpty
// when the list holds no bits; the list is unchanged on failure.
func (l *BitArrayList) Dequeue() (bool, error) {
	if l.length == 0 {
		return false, ErrEmpty
	}

	bit := l.words[0]&1 != 0

	last := len(l.words) - 1
	for k := 0; k < last; k++ {
		l.words[k] = l.words[k]>>1 | l.words[k+1]<<(wordBits-1)
	}
	l.words[last] >>= 1

	l.length--
	if wordsFor(l.length) < len(l.words) {
		l.words = l.words[:last]
	}

	return bit, nil
}

// Pop removes and returns the bit at the back of the list (LIFO). The
// consumed position is cleared so it cannot resurface as set padding. It
// returns ErrEmpty when the list holds no bits; the list is unchanged on
// failure.
func (l *BitArrayList) Pop() (bool, error) {
	if l.length == 0 {
		return false, ErrEmpty
	}

	i := l.length - 1
	idx := i >> wordShift
	mask := uint64(1) << (i & wordMask)

	bit := l.words[idx]&mask != 0
	l.words[idx] &^= mask

	l.length = i
	if wordsFor(l.length) < len(l.words) {
		l.words = l.words[:len(l.words)-1]
	}

	return bit, nil
}

// Set sets the bit at the given index. It returns an ErrIndexOutOfRange when
// index is negative or >= Len(); the list is unchanged on failure.
func (l *BitArrayList) Set(index int, bit bool) error {
	if index < 0 || index >= l.length {
		return &ErrIndexOutOfRange{Index: index, Length: l.length}
	}
	mask := uint64(1) << (index & wordMask)
	if bit {
		l.words[index>>wordShift] |= mask
	} else {
		l.words[index>>wordShift] &^= mask
	}
	return nil
}

// Get returns the bit at the given index. It returns an ErrIndexOutOfRange
// when index is negative or >= Len().
func (l *BitArrayList) Get(index int) (bool, error) {
	if index < 0 || index >= l.length {
		return false, &ErrIndexOutOfRange{Index: index, Length: l.length}
	}
	return l.test(index), nil
}

// test reads bit i without bounds checking. Callers guarantee i < length.
func (l *BitArrayList) test(i int) bool {
	return l.words[i>>wordShift]&(uint64(1)<<(i&wordMask)) != 0
}

// Concat appends every bit of other to l, in order. It never mutates other
// and never aliases other's storage; l.Concat(l) doubles the list.
//
// When l ends on a word boundary the storage words of other are copied
// wholesale. Otherwise each bit of other is pushed individually, crossing
// word boundaries through the regular Push path. Both paths produce
// identical bit sequences.
func (l *BitArrayList) Concat(other *BitArrayList) {
	if l.length&wordMask == 0 {
		l.words = append(l.words, other.words...)
		l.length += other.length
		return
	}

	n := other.length // snapshot, so l.Concat(l) terminates
	for i := 0; i < n; i++ {
		l.Push(other.test(i))
	}
}

// Count returns the number of set bits, ignoring padding in the last word.
func (l *BitArrayList) Count() int {
	if l.length == 0 {
		return 0
	}

	n := 0
	last := len(l.words) - 1
	for _, w := range l.words[:last] {
		n += bits.OnesCount64(w)
	}

	w := l.words[last]
	if rem := l.length & wordMask; rem != 0 {
		w &= uint64(1)<<rem - 1
	}
	return n + bits.OnesCount64(w)
}

// Clone returns a deep copy of the list.
func (l *BitArrayList) Clone() *BitArrayList {
	return &BitArrayList{
		words:  slices.Clone(l.words),
		length: l.length,
	}
}

// Words returns a copy of the raw storage words. Bits above Len() in the
// last word are padding and carry no meaning.
func (l *BitArrayList) Words() []uint64 {
	return slices.Clone(l.words)
}

// All returns an iterator over (index, bit) pairs in logical order.
func (l *BitArrayList) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < l.length; i++ {
			if !yield(i, l.test(i)) {
				return
			}
		}
	}
}

// Ones returns an iterator over the indices of set bits, in ascending order.
func (l *BitArrayList) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < l.length; i++ {
			if l.test(i) && !yield(i) {
				return
			}
		}
	}
}

// String renders the bits in logical order, e.g. "[1, 0, 1, 1]".
func (l *BitArrayList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if l.test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
