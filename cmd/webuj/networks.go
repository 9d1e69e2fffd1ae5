package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/micronautics/webuj/infura"
	"github.com/micronautics/webuj/internal/cli"
)

const projectIDPlaceholder = "<project-id>"

// like the standard library encoder, without escaping the placeholder brackets
var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

type networkInfo struct {
	Name         string `json:"name"`
	ChainID      uint64 `json:"chainId"`
	HTTPEndpoint string `json:"httpEndpoint"`
	WSEndpoint   string `json:"wsEndpoint"`
}

func newNetworkInfo(n infura.Network) networkInfo {
	return networkInfo{
		Name:         n.String(),
		ChainID:      n.ChainID().Uint64(),
		HTTPEndpoint: n.HTTPEndpoint(projectIDPlaceholder),
		WSEndpoint:   n.WSEndpoint(projectIDPlaceholder),
	}
}

func newNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "list the supported networks",
		Long:  "list the supported networks in declaration order, with their chain ids and infura endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []networkInfo
			for n := range infura.Enumerate() {
				infos = append(infos, newNetworkInfo(n))
			}
			if cli.GetBoolFlagValue(cmd, jsonFlag) {
				return printJSON(cmd.OutOrStdout(), infos)
			}
			return printTable(cmd.OutOrStdout(), infos)
		},
	}
	if err := cli.RegisterFlags(cmd, []cli.Flag{jsonFlag}); err != nil {
		panic(err)
	}
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [network]",
		Short: "show a single network",
		Long:  "show the chain id and infura endpoints of a network; the name is matched ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := infura.Parse(args[0])
			if err != nil {
				return err
			}
			info := newNetworkInfo(n)
			if cli.GetBoolFlagValue(cmd, jsonFlag) {
				return printJSON(cmd.OutOrStdout(), info)
			}
			return printTable(cmd.OutOrStdout(), []networkInfo{info})
		},
	}
	if err := cli.RegisterFlags(cmd, []cli.Flag{jsonFlag}); err != nil {
		panic(err)
	}
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printTable(w io.Writer, infos []networkInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCHAIN ID\tHTTP ENDPOINT\tWS ENDPOINT")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", info.Name, info.ChainID, info.HTTPEndpoint, info.WSEndpoint)
	}
	return tw.Flush()
}
