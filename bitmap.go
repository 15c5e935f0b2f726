package bitlist

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// OnesBitmap returns the indices of the set bits as a 32-bit roaring bitmap.
// The bitmap is a snapshot; later mutations of the list do not affect it.
func (l *BitArrayList) OnesBitmap() *roaring.Bitmap {
	rb := roaring.New()
	for i := range l.Ones() {
		rb.Add(uint32(i))
	}
	return rb
}

// FromBitmap creates a BitArrayList of the given bit length whose set
// positions are the bitmap members below length; members at or above length
// are ignored. It returns an ErrLengthMismatch when length is negative. The
// bitmap is not retained.
func FromBitmap(rb *roaring.Bitmap, length int) (*BitArrayList, error) {
	if length < 0 {
		return nil, &ErrLengthMismatch{Length: length}
	}

	l := &BitArrayList{
		words:  make([]uint64, wordsFor(length)),
		length: length,
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= length {
			break // iteration is ascending
		}
		l.words[i>>wordShift] |= uint64(1) << (i & wordMask)
	}

	return l, nil
}
