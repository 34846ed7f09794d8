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
	"testing"

	"github.com/mb-custody/lightspark"
	"github.com/mb-custody/lightspark/internal/assert"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("lookup", func(t *testing.T) {
		t.Parallel()
		for _, name := range TypeNames() {
			_, ok := Lookup(name)
			assert.True(t, ok, assert.Sprintf("lookup %s", name))
		}
		_, ok := Lookup("Transaction")
		assert.False(t, ok)
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()
		names := TypeNames()
		assert.Len(t, names, len(decoders))
		for i := 1; i < len(names); i++ {
			assert.True(t, names[i-1] < names[i], assert.Sprintf("%s before %s", names[i-1], names[i]))
		}
	})

	t.Run("decode concrete", func(t *testing.T) {
		t.Parallel()
		record, err := Decode(nil, "Secret", map[string]any{
			"secret_encrypted_value": "c2VjcmV0",
			"secret_cipher":          "AES_256_GCM",
		})
		assert.Nil(t, err)
		assert.Equal(t, record.Typename(), "Secret")
		assert.Equal(t, record, Record(Secret{EncryptedValue: "c2VjcmV0", Cipher: "AES_256_GCM"}))
	})

	t.Run("decode interface", func(t *testing.T) {
		t.Parallel()
		obj := decodeFixture(t, invoiceJSON)
		record, err := Decode(nil, "Entity", obj)
		assert.Nil(t, err)
		assert.Equal(t, record.Typename(), "Invoice")
		_, ok := record.(Entity)
		assert.True(t, ok)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		record, err := Decode(nil, "Transaction", map[string]any{})
		assert.Nil(t, record)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnknownType)
		assert.Match(t, err.Error(), `"Transaction"`)
	})

	t.Run("decode error", func(t *testing.T) {
		t.Parallel()
		record, err := Decode(nil, "Node", map[string]any{typenameKey: "Channel"})
		assert.Nil(t, record)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnknownInterface)
	})
}
