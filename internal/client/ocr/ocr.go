// Package ocr extracts account details from a captured image.
package ocr

import (
	"context"
	"time"
)

// Result is what a recognizer read from an image.
type Result struct {
	// Account is the recognised account or card number, possibly masked.
	Account string
	RawText string
}

type Recognizer interface {
	Recognize(ctx context.Context, imageRef string) (Result, error)
}

const (
	DefaultDelay = 500 * time.Millisecond

	stubAccount = "6222 **** **** 1234"
	stubRawText = "Card number: 6222 **** **** 1234"
)

// Stub is a Recognizer that waits Delay and then returns a canned card
// number, whatever the image.
type Stub struct {
	Delay time.Duration
}

func NewStub(delay time.Duration) *Stub {
	return &Stub{Delay: delay}
}

func (s *Stub) Recognize(ctx context.Context, _ string) (Result, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{Account: stubAccount, RawText: stubRawText}, nil
}
