package log

import (
	"log/slog"
	"testing"
)

func TestGetWithoutSetup(t *testing.T) {
	l := Get()
	if l == nil {
		t.Fatal("Get() returned nil before Setup")
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup("DEBUG")
	first := Get()
	Setup("ERROR") // second call is a no-op
	if Get() != first {
		t.Error("Setup replaced the logger on a second call")
	}
}

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) *slog.Logger
	}{
		{"WithComponent", WithComponent},
		{"WithPlugin", WithPlugin},
		{"WithDispatch", WithDispatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.fn("x") == nil {
				t.Errorf("%s returned nil", tt.name)
			}
		})
	}
}
