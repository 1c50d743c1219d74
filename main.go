package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/schlog/cmd"
)

// Usage:
//
//	schlog log warn "disk almost full"
//	LOG_LEVEL=debug schlog --json log debug "cache miss"
//	tail -f app.out | schlog pipe --as info
func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
