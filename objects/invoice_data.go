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

// InvoiceDataFragment selects every InvoiceData field.
const InvoiceDataFragment = "\nfragment InvoiceDataFragment on InvoiceData {" + invoiceDataSelection + "}\n"

// InvoiceData is the content of a Lightning invoice.
type InvoiceData struct {
	EncodedPaymentRequest string
	BitcoinNetwork        BitcoinNetwork

	// PaymentHash is the payment hash of this invoice.
	PaymentHash string

	// Amount is the requested amount in this invoice. If it is equal to 0,
	// the sender should choose the amount to send.
	Amount CurrencyAmount

	// CreatedAt is when this invoice was created.
	CreatedAt time.Time

	// ExpiresAt is when this invoice will expire.
	ExpiresAt time.Time

	// Memo is the memo that was included in this invoice, if any.
	Memo *string

	// Destination is the lightning node that will be paid when fulfilling
	// this invoice.
	Destination Node
}

var _ PaymentRequestData = InvoiceData{}

// InvoiceDataFromJSON decodes an InvoiceData.
func InvoiceDataFromJSON(requester lightspark.Requester, obj map[string]any) (InvoiceData, error) {
	r := newReader(requester, obj, "invoice_data")
	data := InvoiceData{
		EncodedPaymentRequest: r.String("encoded_payment_request"),
		BitcoinNetwork:        readEnum[BitcoinNetwork](r, "bitcoin_network"),
		PaymentHash:           r.String("payment_hash"),
		Amount:                readObject(r, "amount", CurrencyAmountFromJSON),
		CreatedAt:             r.Time("created_at"),
		ExpiresAt:             r.Time("expires_at"),
		Memo:                  r.OptionalString("memo"),
		Destination:           readObject(r, "destination", NodeFromJSON),
	}
	if err := r.Err(); err != nil {
		return InvoiceData{}, err
	}
	return data, nil
}

func (InvoiceData) Typename() string { return "InvoiceData" }

func (d InvoiceData) GetEncodedPaymentRequest() string  { return d.EncodedPaymentRequest }
func (d InvoiceData) GetBitcoinNetwork() BitcoinNetwork { return d.BitcoinNetwork }

func (d InvoiceData) ToJSON() map[string]any {
	var destination any
	if d.Destination != nil {
		destination = d.Destination.ToJSON()
	}
	return map[string]any{
		typenameKey:                            d.Typename(),
		"invoice_data_encoded_payment_request": d.EncodedPaymentRequest,
		"invoice_data_bitcoin_network":         string(d.BitcoinNetwork),
		"invoice_data_payment_hash":            d.PaymentHash,
		"invoice_data_amount":                  d.Amount.ToJSON(),
		"invoice_data_created_at":              formatTime(d.CreatedAt),
		"invoice_data_expires_at":              formatTime(d.ExpiresAt),
		"invoice_data_memo":                    optionalString(d.Memo),
		"invoice_data_destination":             destination,
	}
}
