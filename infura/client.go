package infura

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	"github.com/micronautics/webuj/internal/utils"
)

var (
	// ErrMissingProjectID is returned by DialInfura when no project ID is given.
	ErrMissingProjectID = errors.New("missing infura project id")
	// ErrChainIDMismatch is matched by every *ChainIDMismatchError.
	ErrChainIDMismatch = errors.New("chain id mismatch")
)

// ChainIDMismatchError is returned when an endpoint serves a different chain
// than the network it was dialed for.
type ChainIDMismatchError struct {
	Network Network
	Got     *big.Int
}

func (e *ChainIDMismatchError) Error() string {
	msg := fmt.Sprintf("endpoint for %v serves chain id %v, expected %v", e.Network, e.Got, e.Network.ChainID())
	if served, err := FromChainID(e.Got); err == nil {
		msg += fmt.Sprintf(" (%v)", served)
	}
	return msg
}

// Is reports whether target is ErrChainIDMismatch.
func (e *ChainIDMismatchError) Is(target error) bool {
	return target == ErrChainIDMismatch
}

// Client is an ethclient bound to a single network.
type Client struct {
	*ethclient.Client

	network Network
	url     string
}

// DialInfura connects to the Infura HTTPS endpoint of the network for the
// given project.
func DialInfura(ctx context.Context, network Network, projectID string) (*Client, error) {
	if projectID == "" {
		return nil, ErrMissingProjectID
	}
	return Dial(ctx, network, network.HTTPEndpoint(projectID))
}

// Dial connects to a JSON-RPC endpoint expected to serve the given network.
func Dial(ctx context.Context, network Network, rawurl string) (*Client, error) {
	if !network.Valid() {
		return nil, errors.Errorf("cannot dial invalid network %v", network)
	}
	rc, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %v", network)
	}
	utils.Logger().Debug().
		Str("network", network.String()).
		Str("url", redactURL(rawurl)).
		Msg("[infura] connected")
	return &Client{
		Client:  ethclient.NewClient(rc),
		network: network,
		url:     rawurl,
	}, nil
}

// Network returns the network the client was dialed for.
func (c *Client) Network() Network {
	return c.network
}

// VerifyChainID checks that the endpoint serves the chain of the client's
// network.
func (c *Client) VerifyChainID(ctx context.Context) error {
	got, err := c.ChainID(ctx)
	if err != nil {
		return errors.Wrap(err, "eth_chainId")
	}
	if got.Cmp(c.network.ChainID()) != 0 {
		utils.Logger().Warn().
			Str("network", c.network.String()).
			Str("chainID", got.String()).
			Str("url", redactURL(c.url)).
			Msg("[infura] chain id mismatch")
		return &ChainIDMismatchError{Network: c.network, Got: got}
	}
	return nil
}

// redactURL hides the project ID of an Infura URL so it can be logged.
func redactURL(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "<invalid url>"
	}
	if i := strings.Index(u.Path, "/v3/"); i >= 0 {
		u.Path = u.Path[:i+len("/v3/")] + "redacted"
	}
	u.User = nil
	return u.String()
}
