package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/restodash/restodash/pkg/validate"
)

// CLI for validating order event files before replaying them into Kafka.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	eventValidator := validate.NewOrderEventValidator()

	format := validate.InputFormat(*formatStr)

	path := *inputPath
	if path == "" {
		// stdin has no extension to sniff, default to jsonl
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		path = "/dev/stdin"
	}

	summary, err := validate.ValidateFile(ctx, eventValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
