// Package network holds the registry of Sonic networks a project can be
// migrated to. The set is closed: adding a network means adding a constant
// and its registry entry here.
package network

import (
	"fmt"
	"strings"
)

// Network identifies a target Sonic network.
type Network string

const (
	TestNet      Network = "testnet"
	MainnetAlpha Network = "mainnet-alpha"
)

// Default is used whenever no network is explicitly selected.
const Default = TestNet

type facts struct {
	endpoint    string
	sectionName string
	displayName string
}

var registry = map[Network]facts{
	TestNet: {
		endpoint:    "https://api.testnet.sonic.game",
		sectionName: "testnet",
		displayName: "Testnet",
	},
	MainnetAlpha: {
		endpoint:    "https://api.mainnet-alpha.sonic.game",
		sectionName: "mainnet",
		displayName: "Mainnet Alpha",
	},
}

// All returns the known networks in a stable order.
func All() []Network {
	return []Network{TestNet, MainnetAlpha}
}

// Parse converts a user-supplied identifier into a Network.
// Matching is case-insensitive.
func Parse(s string) (Network, error) {
	n := Network(strings.ToLower(s))
	if _, ok := registry[n]; !ok {
		return "", fmt.Errorf("unknown network: %s (valid: testnet, mainnet-alpha)", s)
	}
	return n, nil
}

func (n Network) String() string {
	return string(n)
}

// Endpoint returns the RPC URL the provider.cluster field is rewritten to.
// Unknown values fall back to the default network so the lookup stays total.
func (n Network) Endpoint() string {
	return n.lookup().endpoint
}

// SectionName returns the key the programs.localnet table is relocated to.
func (n Network) SectionName() string {
	return n.lookup().sectionName
}

// DisplayName returns the human-readable network name for terminal output.
func (n Network) DisplayName() string {
	return n.lookup().displayName
}

func (n Network) lookup() facts {
	if f, ok := registry[n]; ok {
		return f
	}
	return registry[Default]
}
