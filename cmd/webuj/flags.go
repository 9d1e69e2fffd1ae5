package main

import (
	"github.com/spf13/cobra"

	"github.com/micronautics/webuj/infura"
	"github.com/micronautics/webuj/internal/cli"
)

var (
	configFlag = cli.StringFlag{
		Name:      "config",
		Shorthand: "c",
		Usage:     "load config from the given toml file",
		DefValue:  "",
	}
)

var logFlags = []cli.Flag{
	logFolderFlag,
	logFileNameFlag,
	logVerbosityFlag,
	legacyVerbosityFlag,
}

var (
	logFolderFlag = cli.StringFlag{
		Name:     "log.dir",
		Usage:    "directory of the rotated log file, no log file when empty",
		DefValue: defaultConfig.Log.Folder,
	}
	logFileNameFlag = cli.StringFlag{
		Name:     "log.name",
		Usage:    "file name of the log file",
		DefValue: defaultConfig.Log.FileName,
	}
	logVerbosityFlag = cli.IntFlag{
		Name:      "log.verb",
		Shorthand: "v",
		Usage:     "logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		DefValue:  defaultConfig.Log.Verbosity,
	}
	legacyVerbosityFlag = cli.IntFlag{
		Name:       "verbosity",
		Usage:      "logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		DefValue:   defaultConfig.Log.Verbosity,
		Deprecated: "use --log.verb",
	}
)

var networkFlags = []cli.Flag{
	networkFlag,
	projectIDFlag,
	endpointFlag,
	timeoutFlag,
}

var (
	networkFlag = cli.NetworkFlag{
		Name:      "network",
		Shorthand: "n",
		Usage:     "network to use (mainnet, kovan, rinkeby, ropsten)",
		DefValue:  infura.Mainnet,
	}
	projectIDFlag = cli.StringFlag{
		Name:      "project-id",
		Shorthand: "p",
		Usage:     "infura project id",
		DefValue:  defaultConfig.Network.ProjectID,
	}
	endpointFlag = cli.StringFlag{
		Name:     "endpoint",
		Usage:    "json-rpc endpoint used instead of the infura one",
		DefValue: defaultConfig.Network.Endpoint,
	}
	timeoutFlag = cli.StringFlag{
		Name:     "timeout",
		Usage:    "timeout of the whole check, ex: 500ms, 10s",
		DefValue: defaultConfig.Network.Timeout,
	}
)

var jsonFlag = cli.BoolFlag{
	Name:  "json",
	Usage: "print as json",
}

func applyLogFlags(cmd *cobra.Command, config *webujConfig) {
	if cli.IsFlagChanged(cmd, logFolderFlag) {
		config.Log.Folder = cli.GetStringFlagValue(cmd, logFolderFlag)
	}
	if cli.IsFlagChanged(cmd, logFileNameFlag) {
		config.Log.FileName = cli.GetStringFlagValue(cmd, logFileNameFlag)
	}
	if cli.IsFlagChanged(cmd, logVerbosityFlag) {
		config.Log.Verbosity = cli.GetIntFlagValue(cmd, logVerbosityFlag)
	} else if cli.IsFlagChanged(cmd, legacyVerbosityFlag) {
		config.Log.Verbosity = cli.GetIntFlagValue(cmd, legacyVerbosityFlag)
	}
}

func applyNetworkFlags(cmd *cobra.Command, config *webujConfig) {
	if cli.IsFlagChanged(cmd, networkFlag) {
		config.Network.Name = cli.GetNetworkFlagValue(cmd, networkFlag).Subdomain()
	}
	if cli.IsFlagChanged(cmd, projectIDFlag) {
		config.Network.ProjectID = cli.GetStringFlagValue(cmd, projectIDFlag)
	}
	if cli.IsFlagChanged(cmd, endpointFlag) {
		config.Network.Endpoint = cli.GetStringFlagValue(cmd, endpointFlag)
	}
	if cli.IsFlagChanged(cmd, timeoutFlag) {
		config.Network.Timeout = cli.GetStringFlagValue(cmd, timeoutFlag)
	}
}
