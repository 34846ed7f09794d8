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
	"strings"
	"testing"

	"github.com/mb-custody/lightspark/internal/assert"
)

func TestCodeMarshaling(t *testing.T) {
	t.Parallel()
	var valid []Code
	for code := minCode; code <= maxCode; code++ {
		valid = append(valid, code)
	}

	unmarshal := func(t testing.TB, code *Code, text []byte) {
		t.Helper()
		assert.Nil(t, code.UnmarshalText(text), assert.Sprintf("unmarshal Code from %q", text))
	}

	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()
		for _, code := range valid {
			text, err := code.MarshalText()
			assert.Nil(t, err, assert.Sprintf("marshal code %v", code))
			var in Code
			unmarshal(t, &in, text)
			assert.Equal(t, in, code, assert.Sprintf("round-trip failed"))
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		const tooBig = maxCode + 1
		_, err := Code(tooBig).MarshalText()
		assert.NotNil(t, err, assert.Sprintf("marshal invalid code"))
		_, err = Code(0).MarshalText()
		assert.NotNil(t, err, assert.Sprintf("marshal zero code"))
		assert.Equal(t, Code(tooBig).String(), "Code(6)")
		var code Code
		assert.NotNil(t, code.UnmarshalText([]byte("999")), assert.Sprintf("unmarshal out-of-bounds code"))
		assert.NotNil(t, code.UnmarshalText([]byte("0")), assert.Sprintf("unmarshal zero code"))
		assert.NotNil(t, code.UnmarshalText([]byte("foobar")), assert.Sprintf("unmarshal invalid code"))
		assert.Zero(t, code)
	})

	t.Run("from string", func(t *testing.T) {
		t.Parallel()
		var code Code
		unmarshal(t, &code, []byte("UNKNOWN_INTERFACE"))
		assert.Equal(t, code, CodeUnknownInterface, assert.Sprintf("unmarshal from text"))
		unmarshal(t, &code, []byte("MALFORMED_PAYLOAD"))
		assert.Equal(t, code, CodeMalformedPayload, assert.Sprintf("unmarshal from text"))
	})

	t.Run("to string", func(t *testing.T) {
		t.Parallel()
		// Ensures that we don't forget to update the mapping in the Stringer
		// implementation.
		for _, code := range valid {
			assert.False(
				t,
				strings.Contains(code.String(), "("),
				assert.Sprintf("update Code.String() method for new codes!"),
			)
		}
		assert.Len(t, valid, len(strToCode))
	})
}
