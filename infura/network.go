// Package infura identifies the Ethereum networks served through Infura and
// maps each of them to its chain ID and endpoint URLs.
//
// For development, Rinkeby (geth only) or Kovan (Parity only) are the
// recommended test networks. Both use Proof of Authority (PoA) consensus, so
// transactions and blocks are produced in a consistent and timely manner.
// Ropsten is closest to Mainnet since it uses Proof of Work (PoW), but it has
// been attacked in the past and tends to be more problematic for developers.
package infura

import (
	"fmt"
	"iter"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// Network is one of the fixed set of networks reachable through Infura.
type Network uint8

// Constants for Network, in declaration order.
const (
	Mainnet Network = iota
	Kovan
	Rinkeby
	Ropsten

	numNetworks
)

var names = [numNetworks]string{
	Mainnet: "MAINNET",
	Kovan:   "KOVAN",
	Rinkeby: "RINKEBY",
	Ropsten: "ROPSTEN",
}

// EIP-155 chain IDs
var chainIDs = [numNetworks]uint64{
	Mainnet: 1,
	Kovan:   42,
	Rinkeby: 4,
	Ropsten: 3,
}

var (
	// ErrUnknownNetwork is matched by every *UnknownNetworkError.
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrUnknownChainID is returned when a chain ID belongs to none of the networks.
	ErrUnknownChainID = errors.New("unknown chain id")
)

// UnknownNetworkError is returned by Parse when a name matches none of the networks.
type UnknownNetworkError struct {
	Name string
}

func (e *UnknownNetworkError) Error() string {
	return fmt.Sprintf("unknown network %q (expected one of %s)", e.Name, strings.Join(names[:], ", "))
}

// Is reports whether target is ErrUnknownNetwork.
func (e *UnknownNetworkError) Is(target error) bool {
	return target == ErrUnknownNetwork
}

// Enumerate yields every network in declaration order. The sequence can be
// ranged over any number of times.
func Enumerate() iter.Seq[Network] {
	return func(yield func(Network) bool) {
		for n := Mainnet; n < numNetworks; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// All returns a fresh slice holding every network in declaration order.
func All() []Network {
	all := make([]Network, 0, numNetworks)
	for n := range Enumerate() {
		all = append(all, n)
	}
	return all
}

// Parse returns the network with the given name. Matching ignores case, so
// "mainnet" and "MAINNET" both give Mainnet.
func Parse(name string) (Network, error) {
	for n := range Enumerate() {
		if strings.EqualFold(name, names[n]) {
			return n, nil
		}
	}
	return 0, &UnknownNetworkError{Name: name}
}

// FromChainID returns the network using the given EIP-155 chain ID.
func FromChainID(id *big.Int) (Network, error) {
	if id != nil && id.IsUint64() {
		for n := range Enumerate() {
			if chainIDs[n] == id.Uint64() {
				return n, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrUnknownChainID, "chain id %v", id)
}

// Valid reports whether n is one of the declared networks.
func (n Network) Valid() bool {
	return n < numNetworks
}

// String returns the canonical uppercase name.
func (n Network) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Network(%d)", uint8(n))
	}
	return names[n]
}

// Subdomain returns the lowercase name used in Infura hosts and config files.
func (n Network) Subdomain() string {
	return strings.ToLower(n.String())
}

// ChainID returns the EIP-155 chain ID, or nil for an invalid network.
func (n Network) ChainID() *big.Int {
	if !n.Valid() {
		return nil
	}
	return new(big.Int).SetUint64(chainIDs[n])
}

// HTTPEndpoint returns the Infura JSON-RPC over HTTPS URL for the project.
func (n Network) HTTPEndpoint(projectID string) string {
	return fmt.Sprintf("https://%s.infura.io/v3/%s", n.Subdomain(), projectID)
}

// WSEndpoint returns the Infura JSON-RPC over websocket URL for the project.
func (n Network) WSEndpoint(projectID string) string {
	return fmt.Sprintf("wss://%s.infura.io/ws/v3/%s", n.Subdomain(), projectID)
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, errors.Errorf("cannot marshal invalid network %d", uint8(n))
	}
	return []byte(names[n]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Set implements pflag.Value.
func (n *Network) Set(s string) error {
	return n.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (n *Network) Type() string {
	return "network"
}
