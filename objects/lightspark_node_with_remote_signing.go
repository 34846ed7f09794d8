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
	"time"

	"github.com/mb-custody/lightspark"
)

// LightsparkNodeWithRemoteSigningFragment selects every LightsparkNodeWithRemoteSigning field.
const LightsparkNodeWithRemoteSigningFragment = "\nfragment LightsparkNodeWithRemoteSigningFragment on LightsparkNodeWithRemoteSigning {" + lightsparkNodeWithRemoteSigningSelection + "}\n"

// A LightsparkNodeWithRemoteSigning is a node whose signing key never leaves
// the account holder: Lightspark sends signing requests to a remote signer.
type LightsparkNodeWithRemoteSigning struct {
	requester lightspark.Requester

	ID                   string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Alias                *string
	BitcoinNetwork       BitcoinNetwork
	Color                *string
	Conductivity         *int64
	DisplayName          string
	PublicKey            *string
	Owner                EntityWrapper
	Status               *LightsparkNodeStatus
	TotalBalance         *CurrencyAmount
	TotalLocalBalance    *CurrencyAmount
	LocalBalance         *CurrencyAmount
	RemoteBalance        *CurrencyAmount
	BlockchainBalance    *BlockchainBalance
	UmaPrescreeningUtxos []string
}

var _ LightsparkNode = LightsparkNodeWithRemoteSigning{}

// LightsparkNodeWithRemoteSigningFromJSON decodes a LightsparkNodeWithRemoteSigning.
func LightsparkNodeWithRemoteSigningFromJSON(requester lightspark.Requester, obj map[string]any) (LightsparkNodeWithRemoteSigning, error) {
	r := newReader(requester, obj, "lightspark_node_with_remote_signing")
	node := LightsparkNodeWithRemoteSigning{
		requester:            requester,
		ID:                   r.String("id"),
		CreatedAt:            r.Time("created_at"),
		UpdatedAt:            r.Time("updated_at"),
		Alias:                r.OptionalString("alias"),
		BitcoinNetwork:       readEnum[BitcoinNetwork](r, "bitcoin_network"),
		Color:                r.OptionalString("color"),
		Conductivity:         r.OptionalInt64("conductivity"),
		DisplayName:          r.String("display_name"),
		PublicKey:            r.OptionalString("public_key"),
		Owner:                readObject(r, "owner", EntityWrapperFromJSON),
		Status:               readOptionalEnum[LightsparkNodeStatus](r, "status"),
		TotalBalance:         readOptionalObject(r, "total_balance", CurrencyAmountFromJSON),
		TotalLocalBalance:    readOptionalObject(r, "total_local_balance", CurrencyAmountFromJSON),
		LocalBalance:         readOptionalObject(r, "local_balance", CurrencyAmountFromJSON),
		RemoteBalance:        readOptionalObject(r, "remote_balance", CurrencyAmountFromJSON),
		BlockchainBalance:    readOptionalObject(r, "blockchain_balance", BlockchainBalanceFromJSON),
		UmaPrescreeningUtxos: r.Strings("uma_prescreening_utxos"),
	}
	if err := r.Err(); err != nil {
		return LightsparkNodeWithRemoteSigning{}, err
	}
	return node, nil
}

// Requester returns the Requester this node was decoded with, if any.
func (n LightsparkNodeWithRemoteSigning) Requester() lightspark.Requester { return n.requester }

func (LightsparkNodeWithRemoteSigning) Typename() string { return "LightsparkNodeWithRemoteSigning" }

func (n LightsparkNodeWithRemoteSigning) GetID() string                            { return n.ID }
func (n LightsparkNodeWithRemoteSigning) GetCreatedAt() time.Time                  { return n.CreatedAt }
func (n LightsparkNodeWithRemoteSigning) GetUpdatedAt() time.Time                  { return n.UpdatedAt }
func (n LightsparkNodeWithRemoteSigning) GetAlias() *string                        { return n.Alias }
func (n LightsparkNodeWithRemoteSigning) GetBitcoinNetwork() BitcoinNetwork        { return n.BitcoinNetwork }
func (n LightsparkNodeWithRemoteSigning) GetColor() *string                        { return n.Color }
func (n LightsparkNodeWithRemoteSigning) GetConductivity() *int64                  { return n.Conductivity }
func (n LightsparkNodeWithRemoteSigning) GetDisplayName() string                   { return n.DisplayName }
func (n LightsparkNodeWithRemoteSigning) GetPublicKey() *string                    { return n.PublicKey }
func (n LightsparkNodeWithRemoteSigning) GetOwner() EntityWrapper                  { return n.Owner }
func (n LightsparkNodeWithRemoteSigning) GetStatus() *LightsparkNodeStatus         { return n.Status }
func (n LightsparkNodeWithRemoteSigning) GetTotalBalance() *CurrencyAmount         { return n.TotalBalance }
func (n LightsparkNodeWithRemoteSigning) GetTotalLocalBalance() *CurrencyAmount    { return n.TotalLocalBalance }
func (n LightsparkNodeWithRemoteSigning) GetLocalBalance() *CurrencyAmount         { return n.LocalBalance }
func (n LightsparkNodeWithRemoteSigning) GetRemoteBalance() *CurrencyAmount        { return n.RemoteBalance }
func (n LightsparkNodeWithRemoteSigning) GetBlockchainBalance() *BlockchainBalance { return n.BlockchainBalance }
func (n LightsparkNodeWithRemoteSigning) GetUmaPrescreeningUtxos() []string        { return n.UmaPrescreeningUtxos }

func (n LightsparkNodeWithRemoteSigning) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:                                                  n.Typename(),
		"lightspark_node_with_remote_signing_id":                     n.ID,
		"lightspark_node_with_remote_signing_created_at":             formatTime(n.CreatedAt),
		"lightspark_node_with_remote_signing_updated_at":             formatTime(n.UpdatedAt),
		"lightspark_node_with_remote_signing_alias":                  optionalString(n.Alias),
		"lightspark_node_with_remote_signing_bitcoin_network":        string(n.BitcoinNetwork),
		"lightspark_node_with_remote_signing_color":                  optionalString(n.Color),
		"lightspark_node_with_remote_signing_conductivity":           optionalInt64(n.Conductivity),
		"lightspark_node_with_remote_signing_display_name":           n.DisplayName,
		"lightspark_node_with_remote_signing_public_key":             optionalString(n.PublicKey),
		"lightspark_node_with_remote_signing_owner":                  n.Owner.ToJSON(),
		"lightspark_node_with_remote_signing_status":                 optionalEnum(n.Status),
		"lightspark_node_with_remote_signing_total_balance":          optionalJSON(n.TotalBalance),
		"lightspark_node_with_remote_signing_total_local_balance":    optionalJSON(n.TotalLocalBalance),
		"lightspark_node_with_remote_signing_local_balance":          optionalJSON(n.LocalBalance),
		"lightspark_node_with_remote_signing_remote_balance":         optionalJSON(n.RemoteBalance),
		"lightspark_node_with_remote_signing_blockchain_balance":     optionalJSON(n.BlockchainBalance),
		"lightspark_node_with_remote_signing_uma_prescreening_utxos": stringsJSON(n.UmaPrescreeningUtxos),
	}
}
