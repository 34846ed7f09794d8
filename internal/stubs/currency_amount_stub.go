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

// Package stubs builds randomized objects records for tests. Every stub
// starts fully populated, optional fields included, and With methods
// override single fields.
//
// Integers stay below 2^53 so that stubs survive the google.protobuf.Struct
// codecs, which store numbers as doubles.
package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mb-custody/lightspark/objects"
)

const maxExactInt = 1 << 53

// safeInt64 returns a random non-negative integer that a float64 can hold
// exactly.
func safeInt64() int64 {
	return gofakeit.Int64() & (maxExactInt - 1)
}

func timestamp() time.Time {
	return gofakeit.Date().UTC()
}

func ptr[T any](v T) *T {
	return &v
}

type CurrencyAmountStub struct {
	amount objects.CurrencyAmount
}

func NewCurrencyAmountStub() CurrencyAmountStub {
	sats := safeInt64() % 100_000_000
	return CurrencyAmountStub{amount: objects.CurrencyAmount{
		OriginalValue:                 sats,
		OriginalUnit:                  objects.CurrencyUnitSatoshi,
		PreferredCurrencyUnit:         objects.CurrencyUnitUsd,
		PreferredCurrencyValueRounded: sats / 1000,
		PreferredCurrencyValueApprox:  gofakeit.Float64Range(0, 100_000),
	}}
}

func (s CurrencyAmountStub) WithOriginalValue(value int64, unit objects.CurrencyUnit) CurrencyAmountStub {
	s.amount.OriginalValue = value
	s.amount.OriginalUnit = unit
	return s
}

func (s CurrencyAmountStub) Get() objects.CurrencyAmount {
	return s.amount
}

func (s CurrencyAmountStub) Ptr() *objects.CurrencyAmount {
	return ptr(s.amount)
}

func NewBlockchainBalance() objects.BlockchainBalance {
	return objects.BlockchainBalance{
		TotalBalance:       NewCurrencyAmountStub().Ptr(),
		ConfirmedBalance:   NewCurrencyAmountStub().Ptr(),
		UnconfirmedBalance: NewCurrencyAmountStub().Ptr(),
		LockedBalance:      nil,
		RequiredReserve:    NewCurrencyAmountStub().Ptr(),
		AvailableBalance:   NewCurrencyAmountStub().Ptr(),
	}
}

func NewPageInfo(hasNext bool) objects.PageInfo {
	return objects.PageInfo{
		HasNextPage:     ptr(hasNext),
		HasPreviousPage: ptr(false),
		StartCursor:     ptr(gofakeit.UUID()),
		EndCursor:       ptr(gofakeit.UUID()),
	}
}
