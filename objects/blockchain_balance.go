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

import "github.com/mb-custody/lightspark"

// BlockchainBalanceFragment selects every BlockchainBalance field.
const BlockchainBalanceFragment = "\nfragment BlockchainBalanceFragment on BlockchainBalance {" + blockchainBalanceSelection + "}\n"

// A BlockchainBalance is the on-chain balance of a node's wallet. Every field
// is nullable.
type BlockchainBalance struct {
	// TotalBalance is the balance of confirmed and unconfirmed UTXOs.
	TotalBalance *CurrencyAmount

	// ConfirmedBalance is the balance of confirmed UTXOs.
	ConfirmedBalance *CurrencyAmount

	// UnconfirmedBalance is the balance of unconfirmed UTXOs.
	UnconfirmedBalance *CurrencyAmount

	// LockedBalance is the balance that's locked by an on-chain transaction.
	LockedBalance *CurrencyAmount

	// RequiredReserve is the amount to keep on chain to close channels.
	RequiredReserve *CurrencyAmount

	// AvailableBalance is the balance that can be spent or used to open
	// channels.
	AvailableBalance *CurrencyAmount
}

// BlockchainBalanceFromJSON decodes a BlockchainBalance.
func BlockchainBalanceFromJSON(requester lightspark.Requester, obj map[string]any) (BlockchainBalance, error) {
	r := newReader(requester, obj, "blockchain_balance")
	balance := BlockchainBalance{
		TotalBalance:       readOptionalObject(r, "total_balance", CurrencyAmountFromJSON),
		ConfirmedBalance:   readOptionalObject(r, "confirmed_balance", CurrencyAmountFromJSON),
		UnconfirmedBalance: readOptionalObject(r, "unconfirmed_balance", CurrencyAmountFromJSON),
		LockedBalance:      readOptionalObject(r, "locked_balance", CurrencyAmountFromJSON),
		RequiredReserve:    readOptionalObject(r, "required_reserve", CurrencyAmountFromJSON),
		AvailableBalance:   readOptionalObject(r, "available_balance", CurrencyAmountFromJSON),
	}
	if err := r.Err(); err != nil {
		return BlockchainBalance{}, err
	}
	return balance, nil
}

func (BlockchainBalance) Typename() string { return "BlockchainBalance" }

func (b BlockchainBalance) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:                              b.Typename(),
		"blockchain_balance_total_balance":       optionalJSON(b.TotalBalance),
		"blockchain_balance_confirmed_balance":   optionalJSON(b.ConfirmedBalance),
		"blockchain_balance_unconfirmed_balance": optionalJSON(b.UnconfirmedBalance),
		"blockchain_balance_locked_balance":      optionalJSON(b.LockedBalance),
		"blockchain_balance_required_reserve":    optionalJSON(b.RequiredReserve),
		"blockchain_balance_available_balance":   optionalJSON(b.AvailableBalance),
	}
}
