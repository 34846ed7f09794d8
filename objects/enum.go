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

// parseEnum converts a wire string into an enum value. It never fails:
// strings this SDK doesn't know are kept verbatim, so a server that adds a
// value doesn't break older clients, and re-encoding reproduces the input.
// The enum's Known method tells the two cases apart: Known() == false is the
// unknown member, and the value still carries the raw string.
func parseEnum[T ~string](raw string) T {
	return T(raw)
}
