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

func TestEnums(t *testing.T) {
	t.Parallel()
	t.Run("known", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parseEnum[PaymentRequestStatus]("OPEN").Known())
		assert.Equal(t, parseEnum[PaymentRequestStatus]("CLOSED"), PaymentRequestStatusClosed)
		assert.True(t, parseEnum[CurrencyUnit]("MILLISATOSHI").Known())
		assert.True(t, parseEnum[BitcoinNetwork]("SIGNET").Known())
		assert.True(t, parseEnum[LightsparkNodeStatus]("WALLET_LOCKED").Known())
	})
	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		status := parseEnum[LightsparkNodeStatus]("HIBERNATING")
		assert.False(t, status.Known())
		assert.Equal(t, status.String(), "HIBERNATING")
		assert.False(t, parseEnum[CurrencyUnit]("DOGE").Known())
		assert.False(t, parseEnum[BitcoinNetwork]("").Known())
		assert.False(t, parseEnum[PaymentRequestStatus]("open").Known())
	})
	t.Run("non-string value", func(t *testing.T) {
		t.Parallel()
		r := newReader(nil, map[string]any{"invoice_status": 3}, "invoice")
		readEnum[PaymentRequestStatus](r, "status")
		assert.Equal(t, lightspark.CodeOf(r.Err()), lightspark.CodeMalformedPayload)
	})
	t.Run("optional", func(t *testing.T) {
		t.Parallel()
		r := newReader(nil, map[string]any{"x_a": nil, "x_b": "READY"}, "x")
		assert.Nil(t, readOptionalEnum[LightsparkNodeStatus](r, "a"))
		got := readOptionalEnum[LightsparkNodeStatus](r, "b")
		assert.Nil(t, r.Err())
		assert.Equal(t, *got, LightsparkNodeStatusReady)
		assert.Equal(t, optionalEnum(got), any("READY"))
		assert.Nil(t, optionalEnum[LightsparkNodeStatus](nil))
	})
}
