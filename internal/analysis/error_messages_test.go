package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/csvinsight/csvinsight/internal/engine"
)

func TestMapError_Codes(t *testing.T) {
	_, parseErr := engine.Parse("a,b\n1")
	_, emptyErr := engine.Parse("")

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"nil", nil, ""},
		{"empty input", emptyErr, "CSV001"},
		{"column mismatch", parseErr, "CSV002"},
		{"not found", ErrNotFound, "ANL001"},
		{"too many ingests", ErrTooManyIngests, "ING001"},
		{"cancelled", context.Canceled, "REQ001"},
		{"deadline", context.DeadlineExceeded, "REQ002"},
		{"unknown", errors.New("something odd"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapError(tt.err); got.Code != tt.code {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.code)
			}
		})
	}
}

func TestMapError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("save analysis"), ErrNotFound)
	if got := MapError(wrapped); got.Code != "ANL001" {
		t.Errorf("wrapped not-found mapped to %q, want ANL001", got.Code)
	}
}
