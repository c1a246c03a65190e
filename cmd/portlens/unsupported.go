//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"portlens correlates ports with processes through the /proc filesystem and is only supported on Linux.",
	)
	os.Exit(1)
}
