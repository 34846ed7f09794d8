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

import (
	"fmt"
	"strconv"
)

var strToCode = map[string]Code{
	"UNKNOWN":           CodeUnknown,
	"UNKNOWN_INTERFACE": CodeUnknownInterface,
	"MALFORMED_PAYLOAD": CodeMalformedPayload,
	"UNKNOWN_TYPE":      CodeUnknownType,
	"UNSUPPORTED_CODEC": CodeUnsupportedCodec,
}

// A Code classifies the errors returned by this module. There are no
// user-defined codes, so only the codes enumerated below are valid.
type Code uint32

const (
	CodeUnknown          Code = 1 // unclassified error
	CodeUnknownInterface Code = 2 // __typename has no concrete type for the interface
	CodeMalformedPayload Code = 3 // required key absent or value has the wrong shape
	CodeUnknownType      Code = 4 // no decoder registered for the type name
	CodeUnsupportedCodec Code = 5 // codec can't handle the value or name

	minCode Code = CodeUnknown
	maxCode Code = CodeUnsupportedCodec
)

// MarshalText implements encoding.TextMarshaler. Codes are marshaled in their
// numeric representations.
func (c Code) MarshalText() ([]byte, error) {
	if c < minCode || c > maxCode {
		return nil, fmt.Errorf("invalid code %v", c)
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts both numeric
// representations (as produced by MarshalText) and the all-caps names used by
// the Lightspark API, such as "UNKNOWN_INTERFACE".
func (c *Code) UnmarshalText(b []byte) error {
	if n, ok := strToCode[string(b)]; ok {
		*c = n
		return nil
	}
	n, err := strconv.ParseUint(string(b), 10 /* base */, 32 /* bitsize */)
	if err != nil {
		return fmt.Errorf("invalid code %q", string(b))
	}
	code := Code(n)
	if code < minCode || code > maxCode {
		return fmt.Errorf("invalid code %v", n)
	}
	*c = code
	return nil
}

func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "Unknown"
	case CodeUnknownInterface:
		return "UnknownInterface"
	case CodeMalformedPayload:
		return "MalformedPayload"
	case CodeUnknownType:
		return "UnknownType"
	case CodeUnsupportedCodec:
		return "UnsupportedCodec"
	}
	return fmt.Sprintf("Code(%d)", c)
}
