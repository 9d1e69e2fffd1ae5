package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RegisterFlags register the flags to command's local flag
func RegisterFlags(cmd *cobra.Command, flags []Flag) error {
	return registerTo(cmd.Flags(), flags)
}

// RegisterPFlags register the flags to command's persistent flag
func RegisterPFlags(cmd *cobra.Command, flags []Flag) error {
	return registerTo(cmd.PersistentFlags(), flags)
}

func registerTo(fs *pflag.FlagSet, flags []Flag) error {
	for _, flag := range flags {
		if err := flag.RegisterTo(fs); err != nil {
			return err
		}
	}
	return nil
}
