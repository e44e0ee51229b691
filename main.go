package main

import (
	"os"

	"github.com/seqlab/azfclass/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
