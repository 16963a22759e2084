package main

import (
	"fmt"
	"os"

	"github.com/NerdMeNot/parsweep"
)

func main() {
	hw := parsweep.HardwareThreads()
	fmt.Printf("Hardware threads: %d\n", hw)

	sizes := []int{100_000, 1_000_000, 5_000_000}

	// One generator for the whole run: size iterations continue the same
	// pseudo-random stream rather than restarting it.
	gen := parsweep.NewGenerator(42)

	for _, size := range sizes {
		parsweep.RunSweep(os.Stdout, gen, size, hw)
	}
}
