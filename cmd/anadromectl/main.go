package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"anadrome/pkg/anadrome"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "demo":
		return runDemo(args[1:], stdout)
	case "activations":
		return runActivations(args[1:], stdout)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

// runDemo builds a fixed reference graph (one bias node, one input node,
// two sigmoid outputs, fully connected forward) and prints its outputs.
func runDemo(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	rawInputs := fs.String("inputs", "1.0", "comma-separated input values")
	rounds := fs.Int("rounds", 1, "number of evaluation rounds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rounds <= 0 {
		return fmt.Errorf("rounds must be > 0")
	}

	inputs, err := parseInputs(*rawInputs)
	if err != nil {
		return err
	}

	net, err := anadrome.NewBuilder().
		SetDefaultActivation(anadrome.Sigmoid).
		AddNodes(anadrome.Bias, 1).
		AddNodes(anadrome.Input, 1).
		AddNodes(anadrome.Output, 2).
		AddNormalConnection(0, 2, 1.0).
		AddNormalConnection(1, 2, 1.0).
		AddNormalConnection(0, 3, 1.0).
		AddNormalConnection(1, 3, 1.0).
		Build(anadrome.Consecutive)
	if err != nil {
		return err
	}

	for round := 0; round < *rounds; round++ {
		outputs := net.Evaluate(inputs)
		fmt.Fprintf(stdout, "round %d outputs = %v\n", round+1, outputs)
	}
	return nil
}

func runActivations(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("activations", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range anadrome.ListActivations() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func parseInputs(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	inputs := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value: %s", part)
		}
		inputs = append(inputs, value)
	}
	return inputs, nil
}

func usageError(message string) error {
	return fmt.Errorf("%s\n\nusage:\n  anadromectl demo [-inputs csv] [-rounds n]\n  anadromectl activations", message)
}
