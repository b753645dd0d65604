package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/jwtkey/internal/config"
	"github.com/suryansh-23/jwtkey/internal/jwtcheck"
	"github.com/suryansh-23/jwtkey/internal/secret"
	"github.com/suryansh-23/jwtkey/internal/ui"
)

func newVerifyCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that jwt.key holds a valid 32-byte key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := verifyConfig(state.cfgPath, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(ui.VerifyLine(state.cfgPath, s.Fingerprint())))
			return nil
		},
	}
}

func verifyConfig(path string, now time.Time) (secret.Secret, error) {
	doc, err := config.Load(path)
	if err != nil {
		return "", err
	}
	if err := doc.RequireSection(config.JWTSection); err != nil {
		return "", err
	}
	value, ok := doc.Lookup(config.JWTSection, config.JWTKey)
	if !ok {
		return "", fmt.Errorf("%w: jwt.key is not set", secret.ErrMalformed)
	}
	s, err := secret.Parse(value)
	if err != nil {
		return "", fmt.Errorf("jwt.key: %w", err)
	}
	if err := jwtcheck.SignAndVerify(s.String(), now); err != nil {
		return "", err
	}
	return s, nil
}
