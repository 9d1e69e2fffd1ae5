package main

import (
	"bytes"
	"math/big"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micronautics/webuj/infura"
)

func runRootCmd(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNetworksCmd(t *testing.T) {
	out, err := runRootCmd("networks")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	for i, n := range infura.All() {
		assert.True(t, strings.HasPrefix(lines[i+1], n.String()), "line %d: %s", i+1, lines[i+1])
	}
	assert.Contains(t, lines[2], "https://kovan.infura.io/v3/<project-id>")
}

func TestNetworksCmdJSON(t *testing.T) {
	out, err := runRootCmd("networks", "--json")
	require.NoError(t, err)

	var infos []networkInfo
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &infos))
	assert.Equal(t, []networkInfo{
		{Name: "MAINNET", ChainID: 1, HTTPEndpoint: "https://mainnet.infura.io/v3/<project-id>", WSEndpoint: "wss://mainnet.infura.io/ws/v3/<project-id>"},
		{Name: "KOVAN", ChainID: 42, HTTPEndpoint: "https://kovan.infura.io/v3/<project-id>", WSEndpoint: "wss://kovan.infura.io/ws/v3/<project-id>"},
		{Name: "RINKEBY", ChainID: 4, HTTPEndpoint: "https://rinkeby.infura.io/v3/<project-id>", WSEndpoint: "wss://rinkeby.infura.io/ws/v3/<project-id>"},
		{Name: "ROPSTEN", ChainID: 3, HTTPEndpoint: "https://ropsten.infura.io/v3/<project-id>", WSEndpoint: "wss://ropsten.infura.io/ws/v3/<project-id>"},
	}, infos)
}

func TestShowCmd(t *testing.T) {
	out, err := runRootCmd("show", "rinkeby", "--json")
	require.NoError(t, err)

	var info networkInfo
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &info))
	assert.Equal(t, "RINKEBY", info.Name)
	assert.Equal(t, uint64(4), info.ChainID)

	_, err = runRootCmd("show", "GOERLI")
	assert.True(t, errors.Is(err, infura.ErrUnknownNetwork))

	_, err = runRootCmd("show")
	assert.Error(t, err)
}

type testEthService struct {
	chainID *big.Int
}

func (s *testEthService) ChainId() *hexutil.Big {
	return (*hexutil.Big)(s.chainID)
}

func (s *testEthService) BlockNumber() hexutil.Uint64 {
	return 77
}

func newTestEndpoint(t *testing.T, chainID int64) string {
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", &testEthService{chainID: big.NewInt(chainID)}))
	hs := httptest.NewServer(srv)
	t.Cleanup(func() {
		hs.Close()
		srv.Stop()
	})
	return hs.URL
}

func TestCheckCmd(t *testing.T) {
	endpoint := newTestEndpoint(t, 4)

	out, err := runRootCmd("check", "-n", "rinkeby", "--endpoint", endpoint, "-v", "0")
	require.NoError(t, err)
	assert.Equal(t, "RINKEBY: chain id 4 verified, head block 77\n", out)

	_, err = runRootCmd("check", "-n", "ropsten", "--endpoint", endpoint, "-v", "0")
	assert.True(t, errors.Is(err, infura.ErrChainIDMismatch))
}

func TestCheckCmdConfigFile(t *testing.T) {
	endpoint := newTestEndpoint(t, 42)
	file := filepath.Join(t.TempDir(), "webuj.conf")
	cfg := makeTestConfig(func(cfg *webujConfig) {
		cfg.Network.Name = "kovan"
		cfg.Network.Endpoint = endpoint
		cfg.Log.Verbosity = 0
	})
	require.NoError(t, writeWebujConfigToFile(cfg, file))

	out, err := runRootCmd("check", "--config", file)
	require.NoError(t, err)
	assert.Equal(t, "KOVAN: chain id 42 verified, head block 77\n", out)

	// flags override the file
	_, err = runRootCmd("check", "--config", file, "-n", "mainnet")
	assert.True(t, errors.Is(err, infura.ErrChainIDMismatch))
}

func TestCheckCmdMissingProjectID(t *testing.T) {
	_, err := runRootCmd("check", "-n", "mainnet", "-v", "0")
	assert.True(t, errors.Is(err, infura.ErrMissingProjectID))
}

func TestDumpConfigCmd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "default.conf")
	_, err := runRootCmd("dumpconfig", file)
	require.NoError(t, err)

	config, err := loadWebujConfig(file)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, config)
}

func TestVersionCmd(t *testing.T) {
	out, err := runRootCmd("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "webuj, version"))
}
