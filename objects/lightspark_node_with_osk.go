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

// LightsparkNodeWithOSKFragment selects every LightsparkNodeWithOSK field.
const LightsparkNodeWithOSKFragment = "\nfragment LightsparkNodeWithOSKFragment on LightsparkNodeWithOSK {" + lightsparkNodeWithOSKSelection + "}\n"

// A LightsparkNodeWithOSK is a node whose signing key is an Operator Signing
// Key (OSK) held by Lightspark, encrypted with the account's node password.
type LightsparkNodeWithOSK struct {
	requester lightspark.Requester

	ID                         string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	Alias                      *string
	BitcoinNetwork             BitcoinNetwork
	Color                      *string
	Conductivity               *int64
	DisplayName                string
	PublicKey                  *string
	Owner                      EntityWrapper
	Status                     *LightsparkNodeStatus
	TotalBalance               *CurrencyAmount
	TotalLocalBalance          *CurrencyAmount
	LocalBalance               *CurrencyAmount
	RemoteBalance              *CurrencyAmount
	BlockchainBalance          *BlockchainBalance
	UmaPrescreeningUtxos       []string
	EncryptedSigningPrivateKey *Secret
}

var _ LightsparkNode = LightsparkNodeWithOSK{}

// LightsparkNodeWithOSKFromJSON decodes a LightsparkNodeWithOSK.
func LightsparkNodeWithOSKFromJSON(requester lightspark.Requester, obj map[string]any) (LightsparkNodeWithOSK, error) {
	r := newReader(requester, obj, "lightspark_node_with_o_s_k")
	node := LightsparkNodeWithOSK{
		requester:                  requester,
		ID:                         r.String("id"),
		CreatedAt:                  r.Time("created_at"),
		UpdatedAt:                  r.Time("updated_at"),
		Alias:                      r.OptionalString("alias"),
		BitcoinNetwork:             readEnum[BitcoinNetwork](r, "bitcoin_network"),
		Color:                      r.OptionalString("color"),
		Conductivity:               r.OptionalInt64("conductivity"),
		DisplayName:                r.String("display_name"),
		PublicKey:                  r.OptionalString("public_key"),
		Owner:                      readObject(r, "owner", EntityWrapperFromJSON),
		Status:                     readOptionalEnum[LightsparkNodeStatus](r, "status"),
		TotalBalance:               readOptionalObject(r, "total_balance", CurrencyAmountFromJSON),
		TotalLocalBalance:          readOptionalObject(r, "total_local_balance", CurrencyAmountFromJSON),
		LocalBalance:               readOptionalObject(r, "local_balance", CurrencyAmountFromJSON),
		RemoteBalance:              readOptionalObject(r, "remote_balance", CurrencyAmountFromJSON),
		BlockchainBalance:          readOptionalObject(r, "blockchain_balance", BlockchainBalanceFromJSON),
		UmaPrescreeningUtxos:       r.Strings("uma_prescreening_utxos"),
		EncryptedSigningPrivateKey: readOptionalObject(r, "encrypted_signing_private_key", SecretFromJSON),
	}
	if err := r.Err(); err != nil {
		return LightsparkNodeWithOSK{}, err
	}
	return node, nil
}

// Requester returns the Requester this node was decoded with, if any.
func (n LightsparkNodeWithOSK) Requester() lightspark.Requester { return n.requester }

func (LightsparkNodeWithOSK) Typename() string { return "LightsparkNodeWithOSK" }

func (n LightsparkNodeWithOSK) GetID() string                            { return n.ID }
func (n LightsparkNodeWithOSK) GetCreatedAt() time.Time                  { return n.CreatedAt }
func (n LightsparkNodeWithOSK) GetUpdatedAt() time.Time                  { return n.UpdatedAt }
func (n LightsparkNodeWithOSK) GetAlias() *string                        { return n.Alias }
func (n LightsparkNodeWithOSK) GetBitcoinNetwork() BitcoinNetwork        { return n.BitcoinNetwork }
func (n LightsparkNodeWithOSK) GetColor() *string                        { return n.Color }
func (n LightsparkNodeWithOSK) GetConductivity() *int64                  { return n.Conductivity }
func (n LightsparkNodeWithOSK) GetDisplayName() string                   { return n.DisplayName }
func (n LightsparkNodeWithOSK) GetPublicKey() *string                    { return n.PublicKey }
func (n LightsparkNodeWithOSK) GetOwner() EntityWrapper                  { return n.Owner }
func (n LightsparkNodeWithOSK) GetStatus() *LightsparkNodeStatus         { return n.Status }
func (n LightsparkNodeWithOSK) GetTotalBalance() *CurrencyAmount         { return n.TotalBalance }
func (n LightsparkNodeWithOSK) GetTotalLocalBalance() *CurrencyAmount    { return n.TotalLocalBalance }
func (n LightsparkNodeWithOSK) GetLocalBalance() *CurrencyAmount         { return n.LocalBalance }
func (n LightsparkNodeWithOSK) GetRemoteBalance() *CurrencyAmount        { return n.RemoteBalance }
func (n LightsparkNodeWithOSK) GetBlockchainBalance() *BlockchainBalance { return n.BlockchainBalance }
func (n LightsparkNodeWithOSK) GetUmaPrescreeningUtxos() []string        { return n.UmaPrescreeningUtxos }

func (n LightsparkNodeWithOSK) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:                                                n.Typename(),
		"lightspark_node_with_o_s_k_id":                            n.ID,
		"lightspark_node_with_o_s_k_created_at":                    formatTime(n.CreatedAt),
		"lightspark_node_with_o_s_k_updated_at":                    formatTime(n.UpdatedAt),
		"lightspark_node_with_o_s_k_alias":                         optionalString(n.Alias),
		"lightspark_node_with_o_s_k_bitcoin_network":               string(n.BitcoinNetwork),
		"lightspark_node_with_o_s_k_color":                         optionalString(n.Color),
		"lightspark_node_with_o_s_k_conductivity":                  optionalInt64(n.Conductivity),
		"lightspark_node_with_o_s_k_display_name":                  n.DisplayName,
		"lightspark_node_with_o_s_k_public_key":                    optionalString(n.PublicKey),
		"lightspark_node_with_o_s_k_owner":                         n.Owner.ToJSON(),
		"lightspark_node_with_o_s_k_status":                        optionalEnum(n.Status),
		"lightspark_node_with_o_s_k_total_balance":                 optionalJSON(n.TotalBalance),
		"lightspark_node_with_o_s_k_total_local_balance":           optionalJSON(n.TotalLocalBalance),
		"lightspark_node_with_o_s_k_local_balance":                 optionalJSON(n.LocalBalance),
		"lightspark_node_with_o_s_k_remote_balance":                optionalJSON(n.RemoteBalance),
		"lightspark_node_with_o_s_k_blockchain_balance":            optionalJSON(n.BlockchainBalance),
		"lightspark_node_with_o_s_k_uma_prescreening_utxos":        stringsJSON(n.UmaPrescreeningUtxos),
		"lightspark_node_with_o_s_k_encrypted_signing_private_key": optionalJSON(n.EncryptedSigningPrivateKey),
	}
}
