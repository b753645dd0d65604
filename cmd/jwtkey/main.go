package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/suryansh-23/jwtkey/internal/config"
	"github.com/suryansh-23/jwtkey/internal/secret"
)

func main() {
	state := &appState{}
	rootCmd := newRootCmd(state)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jwtkey:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, secret.ErrEntropySource):
		return 2
	case errors.Is(err, config.ErrNotFound):
		return 3
	case errors.Is(err, config.ErrParse):
		return 4
	case errors.Is(err, config.ErrMissingSection):
		return 5
	case errors.Is(err, config.ErrWrite):
		return 6
	default:
		return 1
	}
}
