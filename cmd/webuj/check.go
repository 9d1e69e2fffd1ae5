package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/micronautics/webuj/infura"
	"github.com/micronautics/webuj/internal/cli"
	"github.com/micronautics/webuj/internal/utils"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "check that an endpoint serves the selected network",
		Long: "dial the infura endpoint of the selected network (or --endpoint), verify its chain id " +
			"and print the latest block number",
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	if err := cli.RegisterFlags(cmd, networkFlags); err != nil {
		panic(err)
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	config, err := getWebujConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupLogger(config.Log); err != nil {
		return errors.Wrap(err, "setup logger")
	}

	// both already validated
	network, _ := infura.Parse(config.Network.Name)
	timeout, _ := time.ParseDuration(config.Network.Timeout)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client, err := dialNetwork(ctx, network, config.Network)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.VerifyChainID(ctx); err != nil {
		return err
	}
	head, err := client.BlockNumber(ctx)
	if err != nil {
		return errors.Wrap(err, "eth_blockNumber")
	}
	utils.Logger().Info().
		Str("network", network.String()).
		Uint64("head", head).
		Msg("endpoint check passed")

	fmt.Fprintf(cmd.OutOrStdout(), "%v: chain id %v verified, head block %d\n", network, network.ChainID(), head)
	return nil
}

func dialNetwork(ctx context.Context, network infura.Network, config networkConfig) (*infura.Client, error) {
	if config.Endpoint != "" {
		return infura.Dial(ctx, network, config.Endpoint)
	}
	return infura.DialInfura(ctx, network, config.ProjectID)
}
