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

import (
	"time"

	"github.com/mb-custody/lightspark"
)

// GraphNodeFragment selects every GraphNode field.
const GraphNodeFragment = "\nfragment GraphNodeFragment on GraphNode {" + graphNodeSelection + "}\n"

// A GraphNode is a public node on the Lightning Network, as seen in the
// gossip graph.
type GraphNode struct {
	requester lightspark.Requester

	ID             string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Alias          *string
	BitcoinNetwork BitcoinNetwork
	Color          *string
	Conductivity   *int64
	DisplayName    string
	PublicKey      *string
}

var _ Node = GraphNode{}

// GraphNodeFromJSON decodes a GraphNode.
func GraphNodeFromJSON(requester lightspark.Requester, obj map[string]any) (GraphNode, error) {
	r := newReader(requester, obj, "graph_node")
	node := GraphNode{
		requester:      requester,
		ID:             r.String("id"),
		CreatedAt:      r.Time("created_at"),
		UpdatedAt:      r.Time("updated_at"),
		Alias:          r.OptionalString("alias"),
		BitcoinNetwork: readEnum[BitcoinNetwork](r, "bitcoin_network"),
		Color:          r.OptionalString("color"),
		Conductivity:   r.OptionalInt64("conductivity"),
		DisplayName:    r.String("display_name"),
		PublicKey:      r.OptionalString("public_key"),
	}
	if err := r.Err(); err != nil {
		return GraphNode{}, err
	}
	return node, nil
}

// Requester returns the Requester this node was decoded with, if any.
func (n GraphNode) Requester() lightspark.Requester { return n.requester }

func (GraphNode) Typename() string { return "GraphNode" }

func (n GraphNode) GetID() string                     { return n.ID }
func (n GraphNode) GetCreatedAt() time.Time           { return n.CreatedAt }
func (n GraphNode) GetUpdatedAt() time.Time           { return n.UpdatedAt }
func (n GraphNode) GetAlias() *string                 { return n.Alias }
func (n GraphNode) GetBitcoinNetwork() BitcoinNetwork { return n.BitcoinNetwork }
func (n GraphNode) GetColor() *string                 { return n.Color }
func (n GraphNode) GetConductivity() *int64           { return n.Conductivity }
func (n GraphNode) GetDisplayName() string            { return n.DisplayName }
func (n GraphNode) GetPublicKey() *string             { return n.PublicKey }

func (n GraphNode) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:                  n.Typename(),
		"graph_node_id":              n.ID,
		"graph_node_created_at":      formatTime(n.CreatedAt),
		"graph_node_updated_at":      formatTime(n.UpdatedAt),
		"graph_node_alias":           optionalString(n.Alias),
		"graph_node_bitcoin_network": string(n.BitcoinNetwork),
		"graph_node_color":           optionalString(n.Color),
		"graph_node_conductivity":    optionalInt64(n.Conductivity),
		"graph_node_display_name":    n.DisplayName,
		"graph_node_public_key":      optionalString(n.PublicKey),
	}
}
