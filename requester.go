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

package lightspark

import "context"

// A Requester executes GraphQL operations against the Lightspark API. Decoded
// records hold on to the Requester they were decoded with so that lazily
// loaded relations can issue follow-up queries; the codec layer itself never
// calls it.
//
// Implementations own transport, authentication and retries, and must be
// safe for concurrent use.
type Requester interface {
	ExecuteGraphql(ctx context.Context, query string, variables map[string]any) (map[string]any, error)
}
