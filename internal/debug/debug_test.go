package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLog_Disabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetEnabled(false)

	Log("hidden %d", 1)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLog_Enabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetEnabled(true)
	defer SetEnabled(false)

	Log("loaded %d categories", 14)
	LogTiming("fetch", 2*time.Millisecond)

	output := buf.String()
	if !strings.Contains(output, "[PB_DEBUG] ") {
		t.Errorf("missing prefix in %q", output)
	}
	if !strings.Contains(output, "loaded 14 categories") {
		t.Errorf("missing message in %q", output)
	}
	if !strings.Contains(output, "fetch took 2ms") {
		t.Errorf("missing timing in %q", output)
	}
	if !Enabled() {
		t.Error("expected Enabled() to report true")
	}
}
