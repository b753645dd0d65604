package main

import (
	"github.com/suryansh-23/jwtkey/internal/debug"
)

type appState struct {
	cfgPath string
	logger  *debug.Logger
	output  outputOptions

	// interactive reports whether a prompt can be shown; nil means isInteractive.
	interactive func() bool
	confirm     func(path string) (bool, error)
}

type outputOptions struct {
	reveal  bool
	copy    bool
	backend string
}

// confirmHook returns the prompt used before an existing key is replaced, or
// nil when --yes was given or nobody is there to answer.
func (s *appState) confirmHook(yes bool) func(path string) (bool, error) {
	if yes {
		return nil
	}
	interactive := s.interactive
	if interactive == nil {
		interactive = isInteractive
	}
	if !interactive() {
		return nil
	}
	if s.confirm != nil {
		return s.confirm
	}
	return confirmReplace
}
