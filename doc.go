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

// Package lightspark holds the pieces shared by the Lightspark SDK's entity
// codecs: the coded Error type, the opaque Requester capability threaded into
// decoded records, and the wire codecs that turn payload bytes into the JSON
// objects read by package objects.
//
// Decoding is synchronous and pure. Nothing in this package or in package
// objects performs I/O, caches records, or calls the Requester.
package lightspark
