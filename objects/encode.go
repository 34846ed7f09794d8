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

import "time"

// encoder is satisfied by every record in this package, including value
// objects that aren't registered as Records.
type encoder interface {
	ToJSON() map[string]any
}

// The helpers below emit only JSON-native Go types (string, bool, int64,
// float64, nil, []any, map[string]any) so that ToJSON output can be fed
// straight to google.protobuf.Struct as well as encoding/json.

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func optionalJSON[T encoder](v *T) any {
	if v == nil {
		return nil
	}
	return (*v).ToJSON()
}

func listJSON[T encoder](items []T) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToJSON())
	}
	return out
}

func stringsJSON(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func optionalString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optionalInt64(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

func optionalBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}

func optionalEnum[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}
