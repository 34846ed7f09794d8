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

// CurrencyUnit is the unit of a CurrencyAmount.
type CurrencyUnit string

const (
	CurrencyUnitBitcoin      CurrencyUnit = "BITCOIN"      // native currency of the Bitcoin network
	CurrencyUnitSatoshi      CurrencyUnit = "SATOSHI"      // 10e-8 BTC, the usual Lightning unit
	CurrencyUnitMillisatoshi CurrencyUnit = "MILLISATOSHI" // 10e-11 BTC; prefer Satoshi where possible
	CurrencyUnitUsd          CurrencyUnit = "USD"          // United States Dollar
	CurrencyUnitMxn          CurrencyUnit = "MXN"          // Mexican Peso
	CurrencyUnitPhp          CurrencyUnit = "PHP"          // Philippine Peso
	CurrencyUnitEur          CurrencyUnit = "EUR"          // Euro
	CurrencyUnitGbp          CurrencyUnit = "GBP"          // British Pound
	CurrencyUnitInr          CurrencyUnit = "INR"          // Indian Rupee
	CurrencyUnitNanobitcoin  CurrencyUnit = "NANOBITCOIN"  // 10e-9 BTC
	CurrencyUnitMicrobitcoin CurrencyUnit = "MICROBITCOIN" // 10e-6 BTC
	CurrencyUnitMillibitcoin CurrencyUnit = "MILLIBITCOIN" // 10e-3 BTC
)

// Known reports whether u is one of the values above. Values added to the
// API after this SDK was built decode unchanged and report false.
func (u CurrencyUnit) Known() bool {
	switch u {
	case CurrencyUnitBitcoin,
		CurrencyUnitSatoshi,
		CurrencyUnitMillisatoshi,
		CurrencyUnitUsd,
		CurrencyUnitMxn,
		CurrencyUnitPhp,
		CurrencyUnitEur,
		CurrencyUnitGbp,
		CurrencyUnitInr,
		CurrencyUnitNanobitcoin,
		CurrencyUnitMicrobitcoin,
		CurrencyUnitMillibitcoin:
		return true
	}
	return false
}

func (u CurrencyUnit) String() string {
	return string(u)
}
