package main

import (
	"os"

	"github.com/ebochsler/personal-site/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
