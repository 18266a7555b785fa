package validate

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestValidateJSONLStream_MixedLines(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderEventValidator()

	input := strings.Join([]string{
		eventJSON("1", "2", "10.00"),
		"",
		`not json at all`,
		eventJSON("1", "3", "0.00"),
		eventJSON("0", "2", "5.00"), // missing restaurant_id
	}, "\n")

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("want 2 valid / 2 invalid, got %d/%d", res.ValidLinesCount, res.InvalidLinesCount)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 output lines, got %d: %q", len(lines), out.String())
	}
}

func TestValidateJSONLStream_EmptyInput(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderEventValidator()

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 0 || res.InvalidLinesCount != 0 {
		t.Fatalf("want empty result, got %+v", res)
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected, got %q", out.String())
	}
}
