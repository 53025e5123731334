package main

import (
	"errors"
	"fmt"
	"os"

	"pickaxe/cmd/pickaxe/commands"
	"pickaxe/internal/domain"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}
	// An aborted onboarding exits silently; everything else renders once
	// here, with the same non-zero status.
	if !errors.Is(err, domain.ErrUnauthenticated) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
