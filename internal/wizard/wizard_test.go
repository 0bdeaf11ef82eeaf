package wizard

import (
	"errors"
	"testing"

	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/schema"
)

func newTestController() *Controller {
	return New(schema.Steps(listing.TypeProperty))
}

func TestNextBack(t *testing.T) {
	c := newTestController()

	if !c.AtStart() {
		t.Fatal("new controller should be at start")
	}

	c.Next()
	c.Next()
	if c.Active() != 2 {
		t.Fatalf("active = %d, want 2", c.Active())
	}

	c.Back()
	if c.Active() != 1 {
		t.Fatalf("active = %d after back, want 1", c.Active())
	}
}

func TestAtEnd(t *testing.T) {
	c := newTestController()
	steps := len(c.Steps())
	for i := 0; i < steps-1; i++ {
		c.Next()
	}
	if !c.AtEnd() {
		t.Errorf("expected AtEnd after %d advances", steps-1)
	}
}

func TestSkipOptionalStep(t *testing.T) {
	c := newTestController()
	c.Next() // to the optional details step

	if err := c.Skip(c.Active()); err != nil {
		t.Fatalf("unexpected error skipping optional step: %v", err)
	}
	if !c.IsSkipped(1) {
		t.Error("step 1 should be marked skipped")
	}
	if c.Active() != 2 {
		t.Errorf("active = %d after skip, want 2", c.Active())
	}
}

func TestSkipRequiredStepFails(t *testing.T) {
	c := newTestController()

	err := c.Skip(0)
	if !errors.Is(err, ErrInvalidSkip) {
		t.Fatalf("skipping required step: err = %v, want ErrInvalidSkip", err)
	}
	if c.Active() != 0 {
		t.Errorf("active moved to %d on failed skip", c.Active())
	}
}

func TestNextClearsSkip(t *testing.T) {
	c := newTestController()
	c.Next()
	if err := c.Skip(c.Active()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Going back into the skipped step and completing it un-skips it
	c.Back()
	c.Next()
	if c.IsSkipped(1) {
		t.Error("completed step should no longer be skipped")
	}
}

func TestSubmitGate(t *testing.T) {
	c := newTestController()

	if !c.BeginSubmit() {
		t.Fatal("first BeginSubmit should succeed")
	}
	if c.BeginSubmit() {
		t.Error("second BeginSubmit should fail while in flight")
	}
	if !c.Submitting() {
		t.Error("Submitting should report true while in flight")
	}

	c.EndSubmit()
	if !c.BeginSubmit() {
		t.Error("BeginSubmit should succeed after EndSubmit")
	}
}

func TestReset(t *testing.T) {
	c := newTestController()
	c.Next()
	c.Next()
	c.Reset()
	if !c.AtStart() {
		t.Errorf("active = %d after reset, want 0", c.Active())
	}
}
