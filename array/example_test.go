package array_test

import (
	"fmt"

	"github.com/dendisuhubdy/sleip/alloc"
	"github.com/dendisuhubdy/sleip/array"
)

func ExampleFill() {
	buf, err := array.Fill(4, "x")
	if err != nil {
		panic(err)
	}
	fmt.Println(buf.Len(), buf.Slice())
	// Output: 4 [x x x x]
}

func ExampleOf() {
	buf, err := array.Of(3, 1, 4, 1, 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(buf.Slice())
	// Output: [3 1 4 1 5]
}

func ExampleMove() {
	src, err := array.Of(1, 2, 3)
	if err != nil {
		panic(err)
	}
	dst := array.Move(src)
	fmt.Println(dst.Len(), src.Len())
	// Output: 3 0
}

func ExampleFillIn() {
	a, err := alloc.NewArenaFor[int](64)
	if err != nil {
		panic(err)
	}
	defer a.Release()

	buf, err := array.FillIn[int](a, 8, 7)
	if err != nil {
		panic(err)
	}
	fmt.Println(buf.Len(), buf.At(0))
	// Output: 8 7
}
