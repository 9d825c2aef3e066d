//go:build !windows

package trigger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTrigger_NoCommand(t *testing.T) {
	trig := NewCommandTrigger("", nil)
	assert.ErrorIs(t, trig.Trigger(context.Background()), ErrNoCommand)
}

func TestCommandTrigger_ExportsPrompt(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	trig := NewCommandTrigger(`printf '%s' "$PB_PROMPT" > `+out, func() string {
		return `knight, tree \(large\)`
	})

	require.NoError(t, trig.Trigger(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `knight, tree \(large\)`, string(data))
}

func TestCommandTrigger_FailureIncludesOutput(t *testing.T) {
	trig := NewCommandTrigger("echo broken >&2; exit 3", nil)

	err := trig.Trigger(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestCommandTrigger_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trig := NewCommandTrigger("sleep 5", nil)
	assert.Error(t, trig.Trigger(ctx))
}
