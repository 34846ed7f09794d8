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

// AccountToNodesConnectionFragment selects every AccountToNodesConnection
// field.
const AccountToNodesConnectionFragment = "\nfragment AccountToNodesConnectionFragment on AccountToNodesConnection {" + accountToNodesConnectionSelection + "}\n"

// An AccountToNodesConnection is a connection between an account and the
// nodes it manages.
type AccountToNodesConnection struct {
	requester lightspark.Requester

	// Count is the total number of nodes matching the current filters, not
	// the length of Entities.
	Count int64

	PageInfo PageInfo

	// Entities are the nodes of the current page, in server order.
	Entities []LightsparkNode
}

var _ Connection = AccountToNodesConnection{}

// AccountToNodesConnectionFromJSON decodes an AccountToNodesConnection.
func AccountToNodesConnectionFromJSON(requester lightspark.Requester, obj map[string]any) (AccountToNodesConnection, error) {
	r := newReader(requester, obj, "account_to_nodes_connection")
	conn := AccountToNodesConnection{
		requester: requester,
		Count:     r.Int64("count"),
		PageInfo:  readObject(r, "page_info", PageInfoFromJSON),
		Entities:  readList(r, "entities", LightsparkNodeFromJSON),
	}
	if err := r.Err(); err != nil {
		return AccountToNodesConnection{}, err
	}
	return conn, nil
}

// Requester returns the Requester this connection was decoded with, if any.
func (c AccountToNodesConnection) Requester() lightspark.Requester { return c.requester }

func (AccountToNodesConnection) Typename() string { return "AccountToNodesConnection" }

func (c AccountToNodesConnection) GetCount() int64       { return c.Count }
func (c AccountToNodesConnection) GetPageInfo() PageInfo { return c.PageInfo }

func (c AccountToNodesConnection) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:                             c.Typename(),
		"account_to_nodes_connection_count":     c.Count,
		"account_to_nodes_connection_page_info": c.PageInfo.ToJSON(),
		"account_to_nodes_connection_entities":  listJSON(c.Entities),
	}
}
