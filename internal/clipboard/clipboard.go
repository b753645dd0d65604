package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Backend identifies a clipboard command backend.
type Backend string

const (
	BackendAuto   Backend = "auto"
	BackendPbcopy Backend = "pbcopy"
	BackendWlCopy Backend = "wl-copy"
	BackendXclip  Backend = "xclip"
	BackendXsel   Backend = "xsel"
	BackendNone   Backend = "none"
)

var ErrDisabled = errors.New("clipboard disabled")

const copyTimeout = 2 * time.Second

var (
	lookPath    = exec.LookPath
	execCommand = exec.CommandContext
	getenv      = os.Getenv
	goos        = runtime.GOOS
)

var copyArgs = map[Backend][]string{
	BackendPbcopy: nil,
	BackendWlCopy: nil,
	BackendXclip:  {"-selection", "clipboard"},
	BackendXsel:   {"--clipboard", "--input"},
}

// Copy writes data to the clipboard using the requested backend.
func Copy(backend string, data []byte) error {
	resolved, err := Resolve(backend)
	if err != nil {
		return err
	}
	if resolved == BackendNone {
		return ErrDisabled
	}
	return run(string(resolved), copyArgs[resolved], data)
}

// Resolve converts a backend name into a concrete backend.
func Resolve(backend string) (Backend, error) {
	requested := Backend(strings.ToLower(strings.TrimSpace(backend)))
	if requested == "" {
		requested = BackendAuto
	}
	switch requested {
	case BackendAuto:
		return autoBackend()
	case BackendPbcopy, BackendWlCopy, BackendXclip, BackendXsel, BackendNone:
		return requested, nil
	default:
		return "", fmt.Errorf("unsupported clipboard backend: %q", backend)
	}
}

func autoBackend() (Backend, error) {
	candidates := candidates()
	if len(candidates) == 0 {
		return "", errors.New("no clipboard backend available (missing display server)")
	}
	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if _, err := lookPath(string(candidate)); err == nil {
			return candidate, nil
		}
		names = append(names, string(candidate))
	}
	return "", fmt.Errorf("no clipboard backend found; install one of: %s", strings.Join(names, ", "))
}

func candidates() []Backend {
	if goos == "darwin" {
		return []Backend{BackendPbcopy}
	}
	var out []Backend
	if strings.EqualFold(strings.TrimSpace(getenv("XDG_SESSION_TYPE")), "wayland") || strings.TrimSpace(getenv("WAYLAND_DISPLAY")) != "" {
		out = append(out, BackendWlCopy)
	}
	if strings.TrimSpace(getenv("DISPLAY")) != "" {
		out = append(out, BackendXclip, BackendXsel)
	}
	return out
}

func run(command string, args []string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
	defer cancel()

	cmd := execCommand(ctx, command, args...)
	cmd.Stdin = bytes.NewReader(data)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s timeout: %w", command, ctx.Err())
		}
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}
