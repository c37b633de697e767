package overlay

import (
	"errors"
	"fmt"
	"sync"
)

// TeardownError records one failed teardown step.
type TeardownError struct {
	Step string
	Err  error
}

func (e *TeardownError) Error() string {
	return fmt.Sprintf("overlay: teardown %s: %v", e.Step, e.Err)
}

func (e *TeardownError) Unwrap() error { return e.Err }

// TeardownStep is one independently guarded release action.
type TeardownStep struct {
	Name string
	Fn   func() error
}

// Teardown runs release steps in order at shutdown. Every step runs even if
// earlier ones fail or panic, since a peer sharing the display may already
// have released some of the resources.
type Teardown struct {
	once  sync.Once
	steps []TeardownStep
	err   error
}

// NewTeardown creates a teardown sequence from steps.
func NewTeardown(steps ...TeardownStep) *Teardown {
	return &Teardown{steps: steps}
}

// Add appends a step. Steps added after Run are never executed.
func (t *Teardown) Add(name string, fn func() error) {
	t.steps = append(t.steps, TeardownStep{Name: name, Fn: fn})
}

// Run executes every step once, logging each failure at warn level, and
// returns the failures joined. Later calls return the first result.
func (t *Teardown) Run() error {
	t.once.Do(func() {
		var errs []error
		for _, s := range t.steps {
			if err := runStep(s); err != nil {
				Logger().Warn("teardown step failed", "step", s.Name, "err", err)
				errs = append(errs, &TeardownError{Step: s.Name, Err: err})
			}
		}
		t.err = errors.Join(errs...)
		Logger().Info("teardown complete", "steps", len(t.steps), "failed", len(errs))
	})
	return t.err
}

func runStep(s TeardownStep) (err error) {
	if s.Fn == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Fn()
}
