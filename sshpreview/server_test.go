package sshpreview

import (
	"testing"
	"time"

	"github.com/phanxgames/overlay"
)

func TestQuitRequested(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"q", true},
		{"xQ", true},
		{"\x03", true},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := quitRequested([]byte(tt.in)); got != tt.want {
			t.Errorf("quitRequested(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewServerDefaults(t *testing.T) {
	d, err := overlay.NewMemoryDisplay(overlay.DefaultDisplayConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := NewServer(":0", "", d, 0)
	if s.interval != 100*time.Millisecond {
		t.Errorf("interval = %v, want 100ms", s.interval)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close before ListenAndServe = %v", err)
	}
}

func TestListenAndServeAfterClose(t *testing.T) {
	d, _ := overlay.NewMemoryDisplay(overlay.DefaultDisplayConfig())
	defer d.Close()
	s := NewServer("127.0.0.1:0", "", d, 0)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe after Close = %v", err)
		}
	case <-time.After(time.Second):
		s.Close()
		t.Fatal("ListenAndServe kept serving after Close")
	}
}

func TestCloseStopsListener(t *testing.T) {
	d, _ := overlay.NewMemoryDisplay(overlay.DefaultDisplayConfig())
	defer d.Close()
	s := NewServer("127.0.0.1:0", "", d, 0)
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	deadline := time.Now().Add(2 * time.Second)
	for s.Addr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server never started listening")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe did not return after Close")
	}
}
