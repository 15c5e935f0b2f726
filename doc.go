// Package bitlist provides a growable, ordered bit container with FIFO
// semantics for Go.
//
// A BitArrayList packs logical bits into uint64 storage words and supports
// queue-like removal from the front, random access mutation, and
// concatenation of two containers.
//
// # Quick Start
//
//	l := bitlist.New()
//	l.Push(true)
//	l.Push(false)
//	l.Push(true)
//
//	bit, _ := l.Dequeue() // true, the first bit pushed
//	fmt.Println(bit, l.Len())
//
// # Bit Ordering
//
// Logical bit i lives in words[i/64] at mask 1<<(i%64), i.e. bits fill each
// word from the least significant position upward. The ordering is only
// observable through Words; the logical API (Push, Dequeue, Set, Get, Concat)
// is independent of it.
//
// # Concurrency
//
// A BitArrayList is NOT safe for concurrent use. It assumes a single owner;
// callers that share one across goroutines must serialize access externally.
package bitlist
