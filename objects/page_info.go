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

// PageInfoFragment selects every PageInfo field.
const PageInfoFragment = "\nfragment PageInfoFragment on PageInfo {" + pageInfoSelection + "}\n"

// PageInfo holds the cursors of one page of a connection.
type PageInfo struct {
	HasNextPage     *bool
	HasPreviousPage *bool
	StartCursor     *string
	EndCursor       *string
}

// PageInfoFromJSON decodes a PageInfo.
func PageInfoFromJSON(requester lightspark.Requester, obj map[string]any) (PageInfo, error) {
	r := newReader(requester, obj, "page_info")
	info := PageInfo{
		HasNextPage:     r.OptionalBool("has_next_page"),
		HasPreviousPage: r.OptionalBool("has_previous_page"),
		StartCursor:     r.OptionalString("start_cursor"),
		EndCursor:       r.OptionalString("end_cursor"),
	}
	if err := r.Err(); err != nil {
		return PageInfo{}, err
	}
	return info, nil
}

func (PageInfo) Typename() string { return "PageInfo" }

func (p PageInfo) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:                   p.Typename(),
		"page_info_has_next_page":     optionalBool(p.HasNextPage),
		"page_info_has_previous_page": optionalBool(p.HasPreviousPage),
		"page_info_start_cursor":      optionalString(p.StartCursor),
		"page_info_end_cursor":        optionalString(p.EndCursor),
	}
}
