package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"promptbuilder/internal/ports"
)

// Opener implements ports.LinkOpener using the platform URL handler
type Opener struct {
	// launch is replaced in tests
	launch func(name string, args ...string) error
}

// Ensure Opener implements LinkOpener
var _ ports.LinkOpener = (*Opener)(nil)

// NewOpener creates a new link opener
func NewOpener() *Opener {
	return &Opener{launch: run}
}

// OpenURL opens an http(s) link in the default browser
func (o *Opener) OpenURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web url: %s", raw)
	}

	name, args, err := command(runtime.GOOS, raw)
	if err != nil {
		return err
	}
	return o.launch(name, args...)
}

func command(goos, uri string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{uri}, nil
	case "linux":
		return "xdg-open", []string{uri}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", uri}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func run(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
