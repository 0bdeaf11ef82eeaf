// Package wizard tracks the composer's step position and submission gate.
package wizard

import (
	"errors"

	"github.com/fjordhomes/listing-composer/internal/schema"
)

// ErrInvalidSkip is returned when Skip is called on a mandatory step. The
// UI never offers skip on mandatory steps, so hitting this is a programming
// error, not a user-facing condition.
var ErrInvalidSkip = errors.New("wizard: step is not optional")

// Controller owns the active step and skip state for one wizard session.
// It knows nothing about the draft; Reset moves the position without
// touching draft data.
type Controller struct {
	steps      []schema.Step
	active     int
	skipped    map[int]bool
	submitting bool
}

// New creates a controller over the given step sequence, positioned at 0.
func New(steps []schema.Step) *Controller {
	return &Controller{
		steps:   steps,
		skipped: make(map[int]bool),
	}
}

// Steps returns the step sequence.
func (c *Controller) Steps() []schema.Step { return c.steps }

// Active returns the current step index.
func (c *Controller) Active() int { return c.active }

// AtStart returns true on the first step. The caller disables Back here.
func (c *Controller) AtStart() bool { return c.active == 0 }

// AtEnd returns true on the terminal step. The caller must not call Next
// past it; no upper bound is enforced here.
func (c *Controller) AtEnd() bool { return c.active >= len(c.steps)-1 }

// Next advances one step. If the current step is optional and was skipped,
// it is un-skipped first: moving forward through it means it was completed.
func (c *Controller) Next() {
	if c.steps[c.active].Optional && c.skipped[c.active] {
		delete(c.skipped, c.active)
	}
	c.active++
}

// Back moves one step back. The caller guards against calling it at step 0.
func (c *Controller) Back() {
	c.active--
}

// Skip marks an optional step skipped and advances past it. Mandatory steps
// return ErrInvalidSkip.
func (c *Controller) Skip(step int) error {
	if step < 0 || step >= len(c.steps) || !c.steps[step].Optional {
		return ErrInvalidSkip
	}
	c.skipped[step] = true
	c.active = step + 1
	return nil
}

// IsSkipped reports whether a step is currently skipped.
func (c *Controller) IsSkipped(step int) bool { return c.skipped[step] }

// Reset returns to step 0. The draft is left intact.
func (c *Controller) Reset() {
	c.active = 0
}

// BeginSubmit flips the submitting flag. It returns false if a submission is
// already in flight; only one may run per draft at a time.
func (c *Controller) BeginSubmit() bool {
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

// EndSubmit clears the submitting flag once the request resolves.
func (c *Controller) EndSubmit() { c.submitting = false }

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool { return c.submitting }
