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

import "github.com/mb-custody/lightspark"

// LightsparkNodeFragment selects every implementation of LightsparkNode.
const LightsparkNodeFragment = "\nfragment LightsparkNodeFragment on LightsparkNode {" + lightsparkNodeSelection + "}\n"

// A LightsparkNode is a Node managed by Lightspark on behalf of an account.
type LightsparkNode interface {
	Node

	// GetOwner returns the account that owns this node.
	GetOwner() EntityWrapper

	// GetStatus returns the current status of this node, if known.
	GetStatus() *LightsparkNodeStatus

	// GetTotalBalance returns the sum of the balance on the Bitcoin Network,
	// channel balances, and commit fees on this node.
	GetTotalBalance() *CurrencyAmount

	// GetTotalLocalBalance returns the total sum of the channel balances
	// (online and offline) on this node.
	GetTotalLocalBalance() *CurrencyAmount

	// GetLocalBalance returns the sum of the channel balances (online only)
	// that are available to send on this node.
	GetLocalBalance() *CurrencyAmount

	// GetRemoteBalance returns the sum of the channel balances that are
	// available to receive on this node.
	GetRemoteBalance() *CurrencyAmount

	// GetBlockchainBalance returns the details of the balance of this node on
	// the Bitcoin Network.
	GetBlockchainBalance() *BlockchainBalance

	// GetUmaPrescreeningUtxos returns the UTXOs of the channels that are
	// connected to this node, used in UMA compliance screening.
	GetUmaPrescreeningUtxos() []string
}

// LightsparkNodeFromJSON decodes any LightsparkNode, dispatching on
// __typename.
func LightsparkNodeFromJSON(requester lightspark.Requester, obj map[string]any) (LightsparkNode, error) {
	typename, err := typenameOf(obj)
	if err != nil {
		return nil, err
	}
	var node LightsparkNode
	switch typename {
	case "LightsparkNodeWithOSK":
		node, err = LightsparkNodeWithOSKFromJSON(requester, obj)
	case "LightsparkNodeWithRemoteSigning":
		node, err = LightsparkNodeWithRemoteSigningFromJSON(requester, obj)
	default:
		return nil, lightspark.NewUnknownInterfaceError("LightsparkNode", typename)
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}
