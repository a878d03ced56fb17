package cli

import (
	"context"
	"testing"
	"time"
)

func TestSignalContextCancel(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()

	select {
	case <-sc.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}

	if sc.Signal() != nil {
		t.Fatalf("expected no signal, got %v", sc.Signal())
	}
}

func TestSignalContextParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sc := NewSignalContext(parent)
	cancel()

	select {
	case <-sc.Done():
	case <-time.After(time.Second):
		t.Fatal("parent cancellation did not propagate")
	}
}

func TestCreateLoggerLevels(t *testing.T) {
	if CreateLogger(true) == nil {
		t.Fatal("debug logger is nil")
	}
	if CreateLogger(false) == nil {
		t.Fatal("nop logger is nil")
	}
}
