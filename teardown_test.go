package overlay

import (
	"errors"
	"strings"
	"testing"
)

func TestTeardownRunsEveryStep(t *testing.T) {
	var order []string
	step := func(name string, err error) TeardownStep {
		return TeardownStep{Name: name, Fn: func() error {
			order = append(order, name)
			return err
		}}
	}
	errLayer := errors.New("layer already gone")
	td := NewTeardown(
		step("framebuffer", nil),
		step("window", nil),
		step("managed layer", errLayer),
		step("display", errors.New("display already closed")),
		step("vsync event", nil),
	)
	td.Add("service", func() error {
		order = append(order, "service")
		panic("double exit")
	})

	err := td.Run()
	want := "framebuffer,window,managed layer,display,vsync event,service"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
	if !errors.Is(err, errLayer) {
		t.Errorf("err = %v, want it to wrap the layer failure", err)
	}
	var te *TeardownError
	if !errors.As(err, &te) || te.Step != "managed layer" {
		t.Errorf("first TeardownError = %+v", te)
	}
	if !strings.Contains(err.Error(), "panic: double exit") {
		t.Errorf("err = %v, want the recovered panic", err)
	}

	order = nil
	if err2 := td.Run(); err2 != err || len(order) != 0 {
		t.Error("second Run re-executed steps")
	}
}

func TestTeardownNoFailures(t *testing.T) {
	td := NewTeardown(TeardownStep{Name: "nil fn"})
	if err := td.Run(); err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}
