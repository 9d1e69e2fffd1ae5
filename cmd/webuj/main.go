package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/micronautics/webuj/internal/cli"
	"github.com/micronautics/webuj/internal/utils"
)

func main() {
	cli.SetParseErrorHandle(func(err error) {
		utils.FatalError(err)
	})

	if err := newRootCmd().Execute(); err != nil {
		utils.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webuj",
		Short: "select and check the ethereum networks served by infura",
		Long: "webuj lists the networks reachable through infura (mainnet, kovan, rinkeby, ropsten), " +
			"resolves their chain ids and endpoints, and checks that an endpoint serves the expected chain.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootFlags := append([]cli.Flag{configFlag}, logFlags...)
	if err := cli.RegisterPFlags(rootCmd, rootFlags); err != nil {
		utils.FatalErrMsg(err, "register root flags")
	}

	rootCmd.AddCommand(newNetworksCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDumpConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
