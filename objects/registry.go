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
	"sort"

	"github.com/mb-custody/lightspark"
)

// A Decoder decodes a JSON object into a Record.
type Decoder func(lightspark.Requester, map[string]any) (Record, error)

// decoders maps GraphQL type names, both concrete and interface, to their
// decoders. It's read-only after initialization.
var decoders = map[string]Decoder{
	"AccountToNodesConnection":        asDecoder(AccountToNodesConnectionFromJSON),
	"BlockchainBalance":               asDecoder(BlockchainBalanceFromJSON),
	"Connection":                      asDecoder(ConnectionFromJSON),
	"CurrencyAmount":                  asDecoder(CurrencyAmountFromJSON),
	"Entity":                          asDecoder(EntityFromJSON),
	"GraphNode":                       asDecoder(GraphNodeFromJSON),
	"Invoice":                         asDecoder(InvoiceFromJSON),
	"InvoiceData":                     asDecoder(InvoiceDataFromJSON),
	"LightsparkNode":                  asDecoder(LightsparkNodeFromJSON),
	"LightsparkNodeWithOSK":           asDecoder(LightsparkNodeWithOSKFromJSON),
	"LightsparkNodeWithRemoteSigning": asDecoder(LightsparkNodeWithRemoteSigningFromJSON),
	"Node":                            asDecoder(NodeFromJSON),
	"PageInfo":                        asDecoder(PageInfoFromJSON),
	"PaymentRequest":                  asDecoder(PaymentRequestFromJSON),
	"PaymentRequestData":              asDecoder(PaymentRequestDataFromJSON),
	"Secret":                          asDecoder(SecretFromJSON),
}

func asDecoder[T Record](decode decodeFunc[T]) Decoder {
	return func(requester lightspark.Requester, obj map[string]any) (Record, error) {
		v, err := decode(requester, obj)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Lookup returns the decoder for a GraphQL type name.
func Lookup(typeName string) (Decoder, bool) {
	decode, ok := decoders[typeName]
	return decode, ok
}

// TypeNames returns every type name Lookup accepts, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode decodes obj as the named type. Interface names resolve through
// __typename, so the returned Record's Typename may differ from typeName.
func Decode(requester lightspark.Requester, typeName string, obj map[string]any) (Record, error) {
	decode, ok := Lookup(typeName)
	if !ok {
		return nil, lightspark.Errorf(lightspark.CodeUnknownType, "no decoder for type %q", typeName)
	}
	return decode(requester, obj)
}
