package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, errInterrupted):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
