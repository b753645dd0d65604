package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/jwtkey/internal/secret"
)

func newGenerateCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Print a new key without touching any config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := secret.Generate(nil)
			if err != nil {
				return err
			}
			state.logger.Event().Str("fingerprint", s.Fingerprint()).Msg("generated jwt key")
			if state.output.copy {
				reportSecret(cmd, state, s)
				fmt.Fprintf(cmd.OutOrStdout(), "fingerprint %s\n", s.Fingerprint())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.String())
			return nil
		},
	}
}
