package oscommand

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/AntonioJCosta/nickurl/internal/core/ports"
)

// OSOpener implements the URLOpener interface by running the platform's
// "open this URL" command.
type OSOpener struct {
	goos string
	run  func(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// NewOSOpener creates a new OSOpener for the running operating system.
func NewOSOpener() ports.URLOpener {
	return &OSOpener{goos: runtime.GOOS, run: runCommand}
}

// Open launches the default browser on url. It returns once the launcher
// command exits, not when the page is closed.
func (o *OSOpener) Open(ctx context.Context, url string) error {
	name, args, err := launcherFor(o.goos, url)
	if err != nil {
		return err
	}
	stderr, err := o.run(ctx, name, args...)
	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return fmt.Errorf("opening %s with '%s': %w. Stderr: %s", url, name, err, strings.TrimSpace(stderr))
	}
	return nil
}

// launcherFor returns the command that opens url on goos.
func launcherFor(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, fmt.Errorf("opening URLs is not supported on %s", goos)
	}
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return errBuf.String(), err
}
