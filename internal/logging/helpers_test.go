package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHelpersWriteAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "debug", Output: &buf})

	Debug(logger, "cache hit", FieldSport, "nfl")
	Error(logger, "refresh failed", errors.New("boom"))
	Error(logger, "no cause", nil)

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "cache hit", "sport=nfl", "error=boom", "no cause"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Count(out, "error=") != 1 {
		t.Fatalf("expected nil error to be omitted:\n%s", out)
	}
}
