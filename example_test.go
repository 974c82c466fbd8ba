package ndvec_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/ndvec"
)

// Example_revert demonstrates swapping axes and restoring the original order.
func Example_revert() {
	v, err := ndvec.New(3)
	if err != nil {
		log.Fatal(err)
	}

	v.Mutate(0, 0, 1.0) // x
	v.Mutate(1, 0, 2.0) // y
	v.Mutate(2, 0, 3.0) // z

	// x,y,z -> x,z,y -> z,x,y
	_ = v.Swap(2, 1)
	_ = v.Swap(0, 1)

	fmt.Println(v.Order())

	v.Revert()

	heads := make([]float32, v.Dim())
	for axis := range heads {
		heads[axis], _ = v.Get(axis, 0)
	}
	fmt.Println(heads)
	// Output:
	// [2 0 1]
	// [1 2 3]
}

// Example_outOfRange demonstrates how each operation treats invalid indices.
func Example_outOfRange() {
	v, err := ndvec.New(2)
	if err != nil {
		log.Fatal(err)
	}

	v.Mutate(5, 0, 1.0) // ignored

	_, ok := v.Get(5, 0)
	fmt.Println("found:", ok)

	err = v.Swap(0, 5)
	fmt.Println(err, errors.Is(err, ndvec.ErrOutOfRange))
	// Output:
	// found: false
	// swap: index 5 out of range [0, 2) true
}

// Example_revertClear demonstrates the clearing revert mode.
func Example_revertClear() {
	v, err := ndvec.New(3, ndvec.WithRevertMode(ndvec.RevertClear))
	if err != nil {
		log.Fatal(err)
	}

	_ = v.Swap(0, 1)
	_ = v.Swap(1, 2)

	fmt.Println(v.Revert(), v.Revert(), v.Order())
	// Output: 2 0 [0 1 2]
}
