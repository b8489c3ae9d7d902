package stepper

import (
	"context"
	"errors"
	"testing"
)

type countingStepper struct {
	remaining int
}

func (c *countingStepper) Step(ctx context.Context) (Status, error) {
	if c.remaining == 0 {
		return Finished, nil
	}
	c.remaining--
	if c.remaining == 0 {
		return Finished, nil
	}
	return Running, nil
}

func TestRunDrivesToFinished(t *testing.T) {
	s := &countingStepper{remaining: 3}
	if err := Run(context.Background(), s); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.remaining != 0 {
		t.Fatalf("expected remaining=0, got %d", s.remaining)
	}
}

type failingStepper struct{ called int }

func (f *failingStepper) Step(ctx context.Context) (Status, error) {
	f.called++
	return Running, errors.New("boom")
}

func TestRunStopsOnError(t *testing.T) {
	s := &failingStepper{}
	if err := Run(context.Background(), s); err == nil {
		t.Fatalf("expected error")
	}
	if s.called != 1 {
		t.Fatalf("expected Step called once, got %d", s.called)
	}
}
