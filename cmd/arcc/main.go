// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"arc/field"
	"arc/internal/script"
	"arc/r1cs"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: arcc <script.arc> [input0,input1,...]")
		os.Exit(1)
	}

	path := os.Args[1]
	var rawInputs string
	if len(os.Args) > 2 {
		rawInputs = os.Args[2]
	}

	inputs, err := parseInputs(rawInputs)
	if err != nil {
		color.Red("bad input list: %s", err)
		os.Exit(1)
	}

	prog, err := script.CompileFile(path)
	if err != nil {
		os.Exit(1)
	}

	res, err := r1cs.Check(prog, inputs)
	if err != nil {
		color.Red("check failed: %s", err)
		os.Exit(1)
	}

	outPath := "test_cs_in.ppzksnark"
	if err := os.WriteFile(outPath, []byte(res.Serialized), 0o644); err != nil {
		color.Red("failed to write %s: %s", outPath, err)
		os.Exit(1)
	}

	record := fmt.Sprintf("sat = %t, vars = %d, constraints = %d, result = %s",
		res.Sat, res.NumVars, res.NumConstraints, res.OutValue.String())
	if res.Sat {
		color.Green(record)
	} else {
		color.Red(record)
	}
}

func parseInputs(raw string) ([]field.Elem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	inputs := make([]field.Elem, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("input %d (%q): %w", i, p, err)
		}
		inputs[i] = field.FromInt64(n)
	}
	return inputs, nil
}
