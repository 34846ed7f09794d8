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

package objects_test

import (
	"regexp"
	"testing"

	"github.com/mb-custody/lightspark"
	"github.com/mb-custody/lightspark/internal/assert"
	"github.com/mb-custody/lightspark/internal/stubs"
	"github.com/mb-custody/lightspark/objects"
)

type fixture struct {
	record   objects.Record
	fragment string
}

func fixtures() map[string]fixture {
	closed := stubs.NewInvoiceStub().
		WithStatus(objects.PaymentRequestStatusClosed).
		WithAmountPaid(stubs.NewCurrencyAmountStub().Ptr()).
		WithMemo(nil).
		WithDestination(stubs.NewGraphNode()).
		Get()
	return map[string]fixture{
		"currency amount":      {stubs.NewCurrencyAmountStub().Get(), objects.CurrencyAmountFragment},
		"blockchain balance":   {stubs.NewBlockchainBalance(), objects.BlockchainBalanceFragment},
		"page info":            {stubs.NewPageInfo(true), objects.PageInfoFragment},
		"secret":               {objects.Secret{EncryptedValue: "c2VjcmV0", Cipher: "AES_256_GCM"}, objects.SecretFragment},
		"graph node":           {stubs.NewGraphNode(), objects.GraphNodeFragment},
		"node with osk":        {stubs.NewLightsparkNodeWithOSKStub().Get(), objects.LightsparkNodeWithOSKFragment},
		"remote signing node":  {stubs.NewLightsparkNodeWithRemoteSigningStub().Get(), objects.LightsparkNodeWithRemoteSigningFragment},
		"open invoice":         {stubs.NewInvoiceStub().Get(), objects.InvoiceFragment},
		"closed invoice":       {closed, objects.InvoiceFragment},
		"invoice data":         {closed.Data, objects.InvoiceDataFragment},
		"nodes connection":     {stubs.NewAccountToNodesConnectionStub(42).Get(), objects.AccountToNodesConnectionFragment},
		"empty connection":     {stubs.NewAccountToNodesConnectionStub(0).WithEntities().Get(), objects.AccountToNodesConnectionFragment},
		"unknown node status":  {stubs.NewLightsparkNodeWithOSKStub().WithStatus(ptr(objects.LightsparkNodeStatus("HIBERNATING"))).Get(), objects.LightsparkNodeWithOSKFragment},
		"millisatoshi amount":  {stubs.NewCurrencyAmountStub().WithOriginalValue(1<<53-1, objects.CurrencyUnitMillisatoshi).Get(), objects.CurrencyAmountFragment},
		"node without status":  {stubs.NewLightsparkNodeWithOSKStub().WithStatus(nil).Get(), objects.LightsparkNodeWithOSKFragment},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for name, f := range fixtures() {
		f := f
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := objects.Decode(nil, f.record.Typename(), f.record.ToJSON())
			assert.Nil(t, err)
			assert.Equal(t, got, f.record)
		})
	}
}

func TestRoundTripCodecs(t *testing.T) {
	t.Parallel()
	for _, codecName := range lightspark.CodecNames() {
		codec, ok := lightspark.CodecFor(codecName)
		assert.True(t, ok)
		for name, f := range fixtures() {
			f := f
			t.Run(codecName+"/"+name, func(t *testing.T) {
				t.Parallel()
				want := f.record.ToJSON()
				data, err := lightspark.Encode(codec, want)
				assert.Nil(t, err)
				obj, err := lightspark.Decode(codec, data)
				assert.Nil(t, err)
				assert.JSONEqual(t, obj, want)

				got, err := objects.Decode(nil, f.record.Typename(), obj)
				assert.Nil(t, err)
				assert.Equal(t, got, f.record)
				assert.JSONEqual(t, got.ToJSON(), obj)
			})
		}
	}
}

// The fragment is the query side of ToJSON: every key the encoder emits has
// to be selected under that alias.
func TestFragmentAliases(t *testing.T) {
	t.Parallel()
	for name, f := range fixtures() {
		f := f
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for key := range f.record.ToJSON() {
				if key == "__typename" {
					continue
				}
				pattern := `(?m)^\s*` + regexp.QuoteMeta(key) + `: `
				assert.Match(t, f.fragment, pattern, assert.Sprintf("alias %s", key))
			}
		})
	}
}

func TestAccountToNodesConnection(t *testing.T) {
	t.Parallel()
	osk := stubs.NewLightsparkNodeWithOSKStub().WithID("LightsparkNodeWithOSK:1").Get()
	remote := stubs.NewLightsparkNodeWithRemoteSigningStub().WithID("LightsparkNodeWithRemoteSigning:2").Get()

	t.Run("current page only", func(t *testing.T) {
		t.Parallel()
		page := stubs.NewAccountToNodesConnectionStub(42).WithEntities(remote, osk).Get()
		got, err := objects.AccountToNodesConnectionFromJSON(nil, page.ToJSON())
		assert.Nil(t, err)
		assert.Equal(t, got.GetCount(), int64(42))
		assert.Len(t, got.Entities, 2)
		assert.Equal(t, got.Entities[0].GetID(), "LightsparkNodeWithRemoteSigning:2")
		assert.Equal(t, got.Entities[1].GetID(), "LightsparkNodeWithOSK:1")
		assert.True(t, *got.GetPageInfo().HasNextPage)
	})

	t.Run("as connection", func(t *testing.T) {
		t.Parallel()
		page := stubs.NewAccountToNodesConnectionStub(7).Get()
		conn, err := objects.ConnectionFromJSON(nil, page.ToJSON())
		assert.Nil(t, err)
		assert.Equal(t, conn.GetCount(), int64(7))
		assert.Equal(t, conn.Typename(), "AccountToNodesConnection")
	})

	t.Run("unknown entity typename", func(t *testing.T) {
		t.Parallel()
		obj := stubs.NewAccountToNodesConnectionStub(2).WithEntities(osk).Get().ToJSON()
		obj["account_to_nodes_connection_entities"] = []any{
			osk.ToJSON(),
			map[string]any{"__typename": "LightsparkNodeWithHSM"},
		}
		_, err := objects.AccountToNodesConnectionFromJSON(nil, obj)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnknownInterface)
		assert.Match(t, err.Error(), `^account_to_nodes_connection_entities\[1\]: `)
		lerr, ok := lightspark.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, lerr.Interface(), "LightsparkNode")
		assert.Equal(t, lerr.Typename(), "LightsparkNodeWithHSM")
	})

	t.Run("graph node isn't a lightspark node", func(t *testing.T) {
		t.Parallel()
		obj := stubs.NewAccountToNodesConnectionStub(1).Get().ToJSON()
		obj["account_to_nodes_connection_entities"] = []any{stubs.NewGraphNode().ToJSON()}
		_, err := objects.AccountToNodesConnectionFromJSON(nil, obj)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnknownInterface)
	})
}

func TestEntityFromJSON(t *testing.T) {
	t.Parallel()
	entities := []objects.Entity{
		stubs.NewInvoiceStub().Get(),
		stubs.NewGraphNode(),
		stubs.NewLightsparkNodeWithOSKStub().Get(),
		stubs.NewLightsparkNodeWithRemoteSigningStub().Get(),
	}
	for _, want := range entities {
		got, err := objects.EntityFromJSON(nil, want.ToJSON())
		assert.Nil(t, err)
		assert.Equal(t, got, want)
		assert.Equal(t, got.GetID(), want.GetID())
	}
	_, err := objects.EntityFromJSON(nil, stubs.NewPageInfo(false).ToJSON())
	assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnknownInterface)
}

func TestUmaPrescreeningUtxos(t *testing.T) {
	t.Parallel()
	const key = "lightspark_node_with_o_s_k_uma_prescreening_utxos"
	node := stubs.NewLightsparkNodeWithOSKStub().Get()

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		obj := node.ToJSON()
		obj[key] = nil
		_, err := objects.LightsparkNodeWithOSKFromJSON(nil, obj)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeMalformedPayload)
		assert.Match(t, err.Error(), regexp.QuoteMeta(key))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		obj := node.ToJSON()
		obj[key] = []any{}
		got, err := objects.LightsparkNodeWithOSKFromJSON(nil, obj)
		assert.Nil(t, err)
		assert.Zero(t, got.UmaPrescreeningUtxos)
		assert.JSONEqual(t, got.ToJSON(), obj)
	})

	t.Run("remote signing", func(t *testing.T) {
		t.Parallel()
		obj := stubs.NewLightsparkNodeWithRemoteSigningStub().Get().ToJSON()
		obj["lightspark_node_with_remote_signing_uma_prescreening_utxos"] = nil
		_, err := objects.LightsparkNodeWithRemoteSigningFromJSON(nil, obj)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeMalformedPayload)
	})
}
