package rawbuf_test

import (
	"fmt"

	"github.com/cwbudde/algo-vector/vector/rawbuf"
)

func ExampleBuffer() {
	a := rawbuf.New[int](3)
	copy(a.Slots(), []int{1, 2, 3})

	b := rawbuf.New[int](5)
	a.Swap(b)

	fmt.Println(a.Len(), b.Len())
	fmt.Println(b.Slots())

	block := b.Release()
	fmt.Println(len(block), b.Len())

	// Output:
	// 5 3
	// [1 2 3]
	// 3 0
}
