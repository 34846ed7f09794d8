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

// NodeFragment selects every implementation of Node.
const NodeFragment = "\nfragment NodeFragment on Node {" + nodeSelection + "}\n"

// A Node is a node on the Lightning Network: either a public GraphNode or a
// LightsparkNode managed by Lightspark.
type Node interface {
	Entity

	// GetAlias returns a name that identifies the node. It has no importance
	// in terms of operating the node, it is just a way to identify and search
	// for commercial services or popular nodes.
	GetAlias() *string

	// GetBitcoinNetwork returns the Bitcoin network this node is deployed in.
	GetBitcoinNetwork() BitcoinNetwork

	// GetColor returns a hexadecimal string that describes a color, for
	// example "#000000" is black.
	GetColor() *string

	// GetConductivity returns a summary metric used to capture how well
	// positioned a node is to send, receive, or route transactions
	// efficiently. Higher is better. It ranges from 0 to 10.
	GetConductivity() *int64

	// GetDisplayName returns the name of this node in the network. It will be
	// the most human-readable option possible, depending on the data
	// available for this node.
	GetDisplayName() string

	// GetPublicKey returns the public key of this node, used to identify it
	// on the Lightning Network.
	GetPublicKey() *string
}

// NodeFromJSON decodes any Node, dispatching on __typename.
func NodeFromJSON(requester lightspark.Requester, obj map[string]any) (Node, error) {
	typename, err := typenameOf(obj)
	if err != nil {
		return nil, err
	}
	var node Node
	switch typename {
	case "GraphNode":
		node, err = GraphNodeFromJSON(requester, obj)
	case "LightsparkNodeWithOSK":
		node, err = LightsparkNodeWithOSKFromJSON(requester, obj)
	case "LightsparkNodeWithRemoteSigning":
		node, err = LightsparkNodeWithRemoteSigningFromJSON(requester, obj)
	default:
		return nil, lightspark.NewUnknownInterfaceError("Node", typename)
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}
