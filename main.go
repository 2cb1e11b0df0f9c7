// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"arc/internal/script"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: arc <file.arc>")
		os.Exit(1)
	}

	path := os.Args[1]
	program, err := script.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}

	fmt.Printf("%+v\n", program)
	color.Green("parsed %s", path)
}
