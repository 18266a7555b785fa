package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
)

// ValidateEventFromJSON strictly decodes and validates one order event.
func ValidateEventFromJSON(ctx context.Context, validator ports.OrderEventValidator, raw []byte) (*domain.OrderEvent, error) {
	var event domain.OrderEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// nothing may follow the object
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
