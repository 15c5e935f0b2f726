package bitlist_test

import (
	"fmt"

	"github.com/hupe1980/bitlist"
)

// Example demonstrates FIFO access to a bit sequence.
func Example() {
	l := bitlist.New()
	l.Push(true)
	l.Push(false)
	l.Push(true)
	l.Push(true)

	fmt.Println(l)

	bit, _ := l.Dequeue()
	fmt.Println(bit, l.Len())
	// Output:
	// [1, 0, 1, 1]
	// true 3
}

// Example_concat demonstrates joining two bit sequences.
func Example_concat() {
	a, _ := bitlist.From([]uint64{0b101}, 3)
	b, _ := bitlist.From([]uint64{0b01}, 2)

	a.Concat(b)

	fmt.Println(a)
	// Output: [1, 0, 1, 1, 0]
}

// ExampleBitArrayList_Ones demonstrates iterating set bit positions.
func ExampleBitArrayList_Ones() {
	l, _ := bitlist.From([]uint64{0b10110}, 5)

	for i := range l.Ones() {
		fmt.Println(i)
	}
	// Output:
	// 1
	// 2
	// 4
}
