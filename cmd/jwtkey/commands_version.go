package main

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// Overridden at link time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = ""
	date    = ""
)

type versionInfo struct {
	Version string
	Commit  string
	Built   string
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			currentVersion().print(cmd.OutOrStdout())
		},
	}
}

// currentVersion prefers linker-provided values and fills gaps from the
// module build info.
func currentVersion() versionInfo {
	v := versionInfo{
		Version: strings.TrimSpace(version),
		Commit:  strings.TrimSpace(commit),
		Built:   strings.TrimSpace(date),
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v.withDefaults()
	}
	if (v.Version == "" || v.Version == "dev") && info.Main.Version != "(devel)" {
		v.Version = info.Main.Version
	}
	vcs := map[string]*string{"vcs.revision": &v.Commit, "vcs.time": &v.Built}
	for _, setting := range info.Settings {
		if field, ok := vcs[setting.Key]; ok && *field == "" {
			*field = setting.Value
		}
	}
	return v.withDefaults()
}

func (v versionInfo) withDefaults() versionInfo {
	if v.Version == "" {
		v.Version = "dev"
	}
	return v
}

func (v versionInfo) print(w io.Writer) {
	fmt.Fprintf(w, "jwtkey %s\n", v.Version)
	if v.Commit != "" {
		fmt.Fprintf(w, "commit %s\n", v.Commit)
	}
	if v.Built != "" {
		fmt.Fprintf(w, "built %s\n", v.Built)
	}
}
