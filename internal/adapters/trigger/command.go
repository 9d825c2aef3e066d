package trigger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"promptbuilder/internal/ports"
)

// ErrNoCommand is returned when no generate command is configured
var ErrNoCommand = errors.New("no generate command configured: set generate_command or $PB_GENERATE_CMD")

// PromptEnv carries the serialized prompt to the generate command
const PromptEnv = "PB_PROMPT"

// CommandTrigger implements ports.GenerationTrigger by running a shell command
type CommandTrigger struct {
	command string
	prompt  func() string
}

// Ensure CommandTrigger implements GenerationTrigger
var _ ports.GenerationTrigger = (*CommandTrigger)(nil)

// NewCommandTrigger creates a trigger for command. prompt, when set, supplies
// the value exported as $PB_PROMPT.
func NewCommandTrigger(command string, prompt func() string) *CommandTrigger {
	return &CommandTrigger{command: command, prompt: prompt}
}

// Trigger runs the command and waits for it
func (t *CommandTrigger) Trigger(ctx context.Context) error {
	cmd, err := t.Command(ctx)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("generate command failed: %w: %s", err, out)
	}
	return nil
}

// Command returns the exec.Cmd without running it.
// This is useful for integrating with bubbletea's ExecProcess
func (t *CommandTrigger) Command(ctx context.Context) (*exec.Cmd, error) {
	if t.command == "" {
		return nil, ErrNoCommand
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/c", t.command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", t.command)
	}

	cmd.Env = os.Environ()
	if t.prompt != nil {
		cmd.Env = append(cmd.Env, PromptEnv+"="+t.prompt())
	}
	return cmd, nil
}
