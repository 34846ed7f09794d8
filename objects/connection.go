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

// ConnectionFragment selects every implementation of Connection.
const ConnectionFragment = "\nfragment ConnectionFragment on Connection {" + connectionSelection + "}\n"

// A Connection is one page of a cursor-paginated list. Only the current page
// is held in memory; fetching further pages is up to the caller.
type Connection interface {
	Record

	// GetCount returns the total count of objects in this connection, using
	// the current filters. It is different from the number of objects
	// returned in the current page.
	GetCount() int64

	// GetPageInfo returns the pagination information of this page.
	GetPageInfo() PageInfo
}

// ConnectionFromJSON decodes any Connection, dispatching on __typename.
func ConnectionFromJSON(requester lightspark.Requester, obj map[string]any) (Connection, error) {
	typename, err := typenameOf(obj)
	if err != nil {
		return nil, err
	}
	var conn Connection
	switch typename {
	case "AccountToNodesConnection":
		conn, err = AccountToNodesConnectionFromJSON(requester, obj)
	default:
		return nil, lightspark.NewUnknownInterfaceError("Connection", typename)
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}
