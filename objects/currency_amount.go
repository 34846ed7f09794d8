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

// CurrencyAmountFragment selects every CurrencyAmount field.
const CurrencyAmountFragment = "\nfragment CurrencyAmountFragment on CurrencyAmount {" + currencyAmountSelection + "}\n"

// A CurrencyAmount is an amount of money in a specific currency unit, along
// with its conversion into the user's preferred unit.
type CurrencyAmount struct {
	// OriginalValue is the original numeric value for this CurrencyAmount.
	OriginalValue int64

	// OriginalUnit is the original unit of currency for this CurrencyAmount.
	OriginalUnit CurrencyUnit

	// PreferredCurrencyUnit is the unit of user's preferred currency.
	PreferredCurrencyUnit CurrencyUnit

	// PreferredCurrencyValueRounded is the rounded numeric value for this
	// CurrencyAmount in the very base level of user's preferred currency. For
	// example, for USD, the value will be in cents.
	PreferredCurrencyValueRounded int64

	// PreferredCurrencyValueApprox is the approximate float value for this
	// CurrencyAmount in the very base level of user's preferred currency.
	PreferredCurrencyValueApprox float64
}

// CurrencyAmountFromJSON decodes a CurrencyAmount.
func CurrencyAmountFromJSON(requester lightspark.Requester, obj map[string]any) (CurrencyAmount, error) {
	r := newReader(requester, obj, "currency_amount")
	amount := CurrencyAmount{
		OriginalValue:                 r.Int64("original_value"),
		OriginalUnit:                  readEnum[CurrencyUnit](r, "original_unit"),
		PreferredCurrencyUnit:         readEnum[CurrencyUnit](r, "preferred_currency_unit"),
		PreferredCurrencyValueRounded: r.Int64("preferred_currency_value_rounded"),
		PreferredCurrencyValueApprox:  r.Float64("preferred_currency_value_approx"),
	}
	if err := r.Err(); err != nil {
		return CurrencyAmount{}, err
	}
	return amount, nil
}

func (CurrencyAmount) Typename() string { return "CurrencyAmount" }

func (a CurrencyAmount) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:                                        a.Typename(),
		"currency_amount_original_value":                   a.OriginalValue,
		"currency_amount_original_unit":                    string(a.OriginalUnit),
		"currency_amount_preferred_currency_unit":          string(a.PreferredCurrencyUnit),
		"currency_amount_preferred_currency_value_rounded": a.PreferredCurrencyValueRounded,
		"currency_amount_preferred_currency_value_approx":  a.PreferredCurrencyValueApprox,
	}
}
