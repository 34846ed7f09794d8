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

package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mb-custody/lightspark/objects"
)

var nodeStatuses = []string{
	string(objects.LightsparkNodeStatusReady),
	string(objects.LightsparkNodeStatusSyncing),
	string(objects.LightsparkNodeStatusStopped),
}

func publicKey() string {
	return "02" + gofakeit.DigitN(64)
}

func NewGraphNode() objects.GraphNode {
	created := timestamp()
	return objects.GraphNode{
		ID:             "GraphNode:" + gofakeit.UUID(),
		CreatedAt:      created,
		UpdatedAt:      created.Add(time.Duration(gofakeit.Number(1, 86400)) * time.Second),
		Alias:          ptr(gofakeit.Username()),
		BitcoinNetwork: objects.BitcoinNetworkRegtest,
		Color:          ptr(gofakeit.HexColor()),
		Conductivity:   ptr(int64(gofakeit.Number(0, 10))),
		DisplayName:    gofakeit.Name(),
		PublicKey:      ptr(publicKey()),
	}
}

type LightsparkNodeWithOSKStub struct {
	node objects.LightsparkNodeWithOSK
}

func NewLightsparkNodeWithOSKStub() LightsparkNodeWithOSKStub {
	created := timestamp()
	status := objects.LightsparkNodeStatus(gofakeit.RandomString(nodeStatuses))
	secret := &objects.Secret{EncryptedValue: gofakeit.LetterN(48), Cipher: "AES_256_GCM"}
	return LightsparkNodeWithOSKStub{node: objects.LightsparkNodeWithOSK{
		ID:                         "LightsparkNodeWithOSK:" + gofakeit.UUID(),
		CreatedAt:                  created,
		UpdatedAt:                  created,
		Alias:                      ptr(gofakeit.Username()),
		BitcoinNetwork:             objects.BitcoinNetworkRegtest,
		Color:                      ptr(gofakeit.HexColor()),
		Conductivity:               nil,
		DisplayName:                gofakeit.Name(),
		PublicKey:                  ptr(publicKey()),
		Owner:                      objects.EntityWrapper{ID: "Account:" + gofakeit.UUID()},
		Status:                     &status,
		TotalBalance:               NewCurrencyAmountStub().Ptr(),
		TotalLocalBalance:          NewCurrencyAmountStub().Ptr(),
		LocalBalance:               NewCurrencyAmountStub().Ptr(),
		RemoteBalance:              NewCurrencyAmountStub().Ptr(),
		BlockchainBalance:          ptr(NewBlockchainBalance()),
		UmaPrescreeningUtxos:       []string{gofakeit.DigitN(64) + ":0", gofakeit.DigitN(64) + ":1"},
		EncryptedSigningPrivateKey: secret,
	}}
}

func (s LightsparkNodeWithOSKStub) WithID(id string) LightsparkNodeWithOSKStub {
	s.node.ID = id
	return s
}

func (s LightsparkNodeWithOSKStub) WithStatus(status *objects.LightsparkNodeStatus) LightsparkNodeWithOSKStub {
	s.node.Status = status
	return s
}

func (s LightsparkNodeWithOSKStub) Get() objects.LightsparkNodeWithOSK {
	return s.node
}

type LightsparkNodeWithRemoteSigningStub struct {
	node objects.LightsparkNodeWithRemoteSigning
}

func NewLightsparkNodeWithRemoteSigningStub() LightsparkNodeWithRemoteSigningStub {
	created := timestamp()
	return LightsparkNodeWithRemoteSigningStub{node: objects.LightsparkNodeWithRemoteSigning{
		ID:                   "LightsparkNodeWithRemoteSigning:" + gofakeit.UUID(),
		CreatedAt:            created,
		UpdatedAt:            created,
		Alias:                nil,
		BitcoinNetwork:       objects.BitcoinNetworkMainnet,
		Color:                nil,
		Conductivity:         ptr(int64(gofakeit.Number(0, 10))),
		DisplayName:          gofakeit.Name(),
		PublicKey:            ptr(publicKey()),
		Owner:                objects.EntityWrapper{ID: "Account:" + gofakeit.UUID()},
		Status:               ptr(objects.LightsparkNodeStatusReady),
		TotalBalance:         NewCurrencyAmountStub().Ptr(),
		TotalLocalBalance:    nil,
		LocalBalance:         NewCurrencyAmountStub().Ptr(),
		RemoteBalance:        NewCurrencyAmountStub().Ptr(),
		BlockchainBalance:    nil,
		UmaPrescreeningUtxos: nil,
	}}
}

func (s LightsparkNodeWithRemoteSigningStub) WithID(id string) LightsparkNodeWithRemoteSigningStub {
	s.node.ID = id
	return s
}

func (s LightsparkNodeWithRemoteSigningStub) Get() objects.LightsparkNodeWithRemoteSigning {
	return s.node
}
