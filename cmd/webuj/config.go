package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/micronautics/webuj/infura"
	"github.com/micronautics/webuj/internal/cli"
	"github.com/micronautics/webuj/internal/utils"
)

const tomlConfigVersion = "1.0.0"

type webujConfig struct {
	Version string
	Network networkConfig
	Log     logConfig
}

type networkConfig struct {
	Name      string
	ProjectID string
	Endpoint  string `toml:",omitempty"` // overrides the infura endpoint when set
	Timeout   string
}

type logConfig struct {
	Folder      string // no log file when empty
	FileName    string
	RotateSize  int
	RotateCount int
	Verbosity   int
}

var defaultConfig = webujConfig{
	Version: tomlConfigVersion,
	Network: networkConfig{
		Name:      infura.Mainnet.Subdomain(),
		ProjectID: "",
		Timeout:   "10s",
	},
	Log: logConfig{
		Folder:      "",
		FileName:    "webuj.log",
		RotateSize:  100,
		RotateCount: 3,
		Verbosity:   utils.VerbosityWarn,
	},
}

func getDefaultWebujConfigCopy() webujConfig {
	config := defaultConfig
	return config
}

func newDumpConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dumpconfig [config_file]",
		Short: "dump the default config to file",
		Long:  "dump the default config to a toml file that can be edited and passed back with --config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := getDefaultWebujConfigCopy()
			if err := writeWebujConfigToFile(config, args[0]); err != nil {
				return errors.Wrap(err, "dump config")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", args[0])
			return nil
		},
	}
}

// getWebujConfig assembles the config from defaults, the config file and the
// command line flags, in that order.
func getWebujConfig(cmd *cobra.Command) (webujConfig, error) {
	var (
		config webujConfig
		err    error
	)
	if cli.IsFlagChanged(cmd, configFlag) {
		configFile := cli.GetStringFlagValue(cmd, configFlag)
		config, err = loadWebujConfig(configFile)
		if err != nil {
			return webujConfig{}, errors.Wrapf(err, "load config %s", configFile)
		}
	} else {
		config = getDefaultWebujConfigCopy()
	}

	applyLogFlags(cmd, &config)
	applyNetworkFlags(cmd, &config)

	if err := validateWebujConfig(config); err != nil {
		return webujConfig{}, err
	}
	return config, nil
}

func validateWebujConfig(config webujConfig) error {
	if _, err := infura.Parse(config.Network.Name); err != nil {
		return errors.WithMessage(err, "invalid Network.Name")
	}
	timeout, err := time.ParseDuration(config.Network.Timeout)
	if err != nil {
		return errors.Wrap(err, "invalid Network.Timeout")
	}
	if timeout <= 0 {
		return errors.Errorf("invalid Network.Timeout: %v must be positive", timeout)
	}
	if config.Log.Folder != "" && config.Log.FileName == "" {
		return errors.New("Log.FileName is required when Log.Folder is set")
	}
	return nil
}

func setupLogger(config logConfig) error {
	utils.SetLogVerbosity(config.Verbosity)
	if config.Folder == "" {
		return nil
	}
	file := filepath.Join(config.Folder, config.FileName)
	return utils.AddLogFile(file, config.RotateSize, config.RotateCount)
}

func loadWebujConfig(file string) (webujConfig, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return webujConfig{}, err
	}

	var config webujConfig
	if err := toml.Unmarshal(b, &config); err != nil {
		return webujConfig{}, err
	}
	if config.Version != tomlConfigVersion {
		return webujConfig{}, errors.Errorf("unsupported config version %q (expected %q)", config.Version, tomlConfigVersion)
	}
	return config, nil
}

func writeWebujConfigToFile(config webujConfig, file string) error {
	b, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0644)
}
