// Package dialer defines the dial action a retrieved number is handed to.
// The speed-dial store only guarantees correct retrieval; placing the call
// belongs to whatever sits behind the Dialer.
package dialer

import (
	"context"
	"fmt"
	"io"
)

// Dialer places a call to a phone number.
type Dialer interface {
	Dial(ctx context.Context, number string) error
}

// NoopDialer accepts every dial and does nothing.
type NoopDialer struct{}

func (NoopDialer) Dial(ctx context.Context, number string) error {
	return nil
}

// ATDialer writes Hayes ATD command lines to a writer, the way a handset
// would drive a GSM module over UART.
type ATDialer struct {
	w io.Writer
}

// NewATDialer creates an ATDialer writing to w.
func NewATDialer(w io.Writer) *ATDialer {
	return &ATDialer{w: w}
}

func (d *ATDialer) Dial(ctx context.Context, number string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(d.w, "ATD%s;\r\n", number); err != nil {
		return fmt.Errorf("write dial command: %w", err)
	}
	return nil
}
