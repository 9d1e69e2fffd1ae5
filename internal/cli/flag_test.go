package cli

import (
	"testing"

	"github.com/micronautics/webuj/infura"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStringFlag = StringFlag{
		Name:      "project-id",
		Shorthand: "p",
		DefValue:  "none",
	}
	testBoolFlag = BoolFlag{
		Name: "json",
	}
	testIntFlag = IntFlag{
		Name:     "verbosity",
		DefValue: 3,
	}
	testNetworkFlag = NetworkFlag{
		Name:      "network",
		Shorthand: "n",
		DefValue:  infura.Rinkeby,
	}
	testDeprecatedFlag = StringFlag{
		Name:       "network_type",
		Deprecated: "use --network",
	}
	testFlags = []Flag{testStringFlag, testBoolFlag, testIntFlag, testNetworkFlag, testDeprecatedFlag}
)

func runTestCommand(t *testing.T, args []string, run func(cmd *cobra.Command)) error {
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd)
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	require.NoError(t, RegisterFlags(cmd, testFlags))
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestFlagDefaults(t *testing.T) {
	SetParseErrorHandle(func(err error) { t.Fatal(err) })
	defer SetParseErrorHandle(nil)

	err := runTestCommand(t, nil, func(cmd *cobra.Command) {
		assert.Equal(t, "none", GetStringFlagValue(cmd, testStringFlag))
		assert.False(t, GetBoolFlagValue(cmd, testBoolFlag))
		assert.Equal(t, 3, GetIntFlagValue(cmd, testIntFlag))
		assert.Equal(t, infura.Rinkeby, GetNetworkFlagValue(cmd, testNetworkFlag))
		assert.False(t, HasFlagsChanged(cmd, testFlags))
	})
	require.NoError(t, err)
}

func TestFlagValues(t *testing.T) {
	SetParseErrorHandle(func(err error) { t.Fatal(err) })
	defer SetParseErrorHandle(nil)

	args := []string{"-p", "abc", "--json", "--verbosity", "5", "-n", "kovan"}
	err := runTestCommand(t, args, func(cmd *cobra.Command) {
		assert.Equal(t, "abc", GetStringFlagValue(cmd, testStringFlag))
		assert.True(t, GetBoolFlagValue(cmd, testBoolFlag))
		assert.Equal(t, 5, GetIntFlagValue(cmd, testIntFlag))
		assert.Equal(t, infura.Kovan, GetNetworkFlagValue(cmd, testNetworkFlag))
		assert.True(t, IsFlagChanged(cmd, testNetworkFlag))
		assert.False(t, IsFlagChanged(cmd, testDeprecatedFlag))
	})
	require.NoError(t, err)
}

func TestNetworkFlagRejectsUnknown(t *testing.T) {
	err := runTestCommand(t, []string{"--network", "goerli"}, func(cmd *cobra.Command) {
		t.Fatal("command should not run")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown network "goerli"`)
}

func TestDeprecatedFlagHidden(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	require.NoError(t, RegisterPFlags(cmd, testFlags))
	f := cmd.PersistentFlags().Lookup(testDeprecatedFlag.Name)
	require.NotNil(t, f)
	assert.True(t, f.Hidden)
	assert.Equal(t, "use --network", f.Deprecated)
}

func TestGetNetworkFlagValueOnWrongType(t *testing.T) {
	var got error
	SetParseErrorHandle(func(err error) { got = err })
	defer SetParseErrorHandle(nil)

	err := runTestCommand(t, nil, func(cmd *cobra.Command) {
		wrong := NetworkFlag{Name: testStringFlag.Name, DefValue: infura.Ropsten}
		assert.Equal(t, infura.Ropsten, GetNetworkFlagValue(cmd, wrong))
	})
	require.NoError(t, err)
	assert.Error(t, got)
}
