// Copyright 2022-2025 The Lightspark SDK Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package objects

// BitcoinNetwork identifies the Bitcoin network a node or invoice operates on.
type BitcoinNetwork string

const (
	BitcoinNetworkMainnet BitcoinNetwork = "MAINNET" // production Bitcoin blockchain
	BitcoinNetworkRegtest BitcoinNetwork = "REGTEST" // test chain maintained by Lightspark
	BitcoinNetworkSignet  BitcoinNetwork = "SIGNET"  // centralized test chain, unused at Lightspark
	BitcoinNetworkTestnet BitcoinNetwork = "TESTNET" // public test chain
)

// Known reports whether n is one of the values above. Values added to the
// API after this SDK was built decode unchanged and report false.
func (n BitcoinNetwork) Known() bool {
	switch n {
	case BitcoinNetworkMainnet,
		BitcoinNetworkRegtest,
		BitcoinNetworkSignet,
		BitcoinNetworkTestnet:
		return true
	}
	return false
}

func (n BitcoinNetwork) String() string {
	return string(n)
}
