package bitlist

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Dequeue and Pop when the list holds no bits.
	ErrEmpty = errors.New("bit array list is empty")
)

// ErrIndexOutOfRange indicates an index outside [0, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: index is %d but length is %d", e.Index, e.Length)
}

// ErrLengthMismatch indicates a bit length that does not match the supplied
// storage, or a negative bit length.
type ErrLengthMismatch struct {
	Words  int // number of uint64 storage words supplied
	Length int // requested bit length
}

func (e *ErrLengthMismatch) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("length mismatch: negative bit length %d", e.Length)
	}
	return fmt.Sprintf("length mismatch: %d bits require %d words but %d were supplied", e.Length, wordsFor(e.Length), e.Words)
}
