package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/jwtkey/internal/clipboard"
	"github.com/suryansh-23/jwtkey/internal/debug"
	"github.com/suryansh-23/jwtkey/internal/inject"
	"github.com/suryansh-23/jwtkey/internal/secret"
	"github.com/suryansh-23/jwtkey/internal/ui"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath    string
		debugFlag  bool
		yes        bool
		noSelfTest bool
	)

	rootCmd := &cobra.Command{
		Use:           "jwtkey",
		Short:         "Generate a JWT signing key and write it to jwt.key in a YAML config",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			state.cfgPath = resolveConfigPath(cfgPath)
			state.logger = debug.New(debugFlag)
			state.logger.Infof("config path %s", state.cfgPath)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := inject.Options{
				Logger:   state.logger,
				Confirm:  state.confirmHook(yes),
				SelfTest: !noSelfTest,
			}
			res, err := inject.New(opts).Run(state.cfgPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(ui.StatusLine(res.Path, res.Secret.Fingerprint(), res.Replaced)))
			reportSecret(cmd, state, res.Secret)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default "+configEnv+" or ../config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable sanitized debug logging")
	rootCmd.PersistentFlags().BoolVar(&state.output.copy, "copy", false, "copy the generated key to the clipboard")
	rootCmd.PersistentFlags().StringVar(&state.output.backend, "clipboard-backend", string(clipboard.BackendAuto), "clipboard backend: auto, pbcopy, wl-copy, xclip, xsel, none")
	rootCmd.Flags().BoolVar(&state.output.reveal, "reveal", false, "print the generated key in cleartext")
	rootCmd.Flags().BoolVar(&yes, "yes", false, "replace an existing key without asking")
	rootCmd.Flags().BoolVar(&noSelfTest, "no-self-test", false, "skip the HS256 sign/verify check before saving")

	rootCmd.AddCommand(newGenerateCmd(state))
	rootCmd.AddCommand(newVerifyCmd(state))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// reportSecret handles the explicit reveal and copy requests. The key is
// already persisted, so a clipboard failure only warns.
func reportSecret(cmd *cobra.Command, state *appState, s secret.Secret) {
	if state.output.reveal {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RevealLine(s.String()))
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn("warning: the key was printed in cleartext"))
	}
	if state.output.copy {
		if err := clipboard.Copy(state.output.backend, []byte(s.String())); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Alert(fmt.Sprintf("clipboard copy failed: %v", err)))
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Copied key to clipboard.")
	}
}
