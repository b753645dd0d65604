package main

import (
	"os"
	"strings"

	"github.com/suryansh-23/jwtkey/internal/config"
)

const configEnv = "JWTKEY_CONFIG"

func resolveConfigPath(override string) string {
	override = strings.TrimSpace(override)
	if override != "" {
		return override
	}
	if env := strings.TrimSpace(os.Getenv(configEnv)); env != "" {
		return env
	}
	return config.DefaultPath
}
