package main

import (
	"os"

	"github.com/comlang/comlang/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
