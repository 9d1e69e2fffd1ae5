package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	versionFormat = "%v, version %v-%v (%v %v)"
)

// Version string variables, set at build time with -ldflags.
var (
	version string
	builtBy string
	builtAt string
	commit  string
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version of the webuj binary",
		Long:  "print version of the webuj binary",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getWebujVersion())
		},
	}
}

func getWebujVersion() string {
	return fmt.Sprintf(versionFormat, "webuj", version, commit, builtBy, builtAt)
}
