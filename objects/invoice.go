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

// InvoiceFragment selects every Invoice field.
const InvoiceFragment = "\nfragment InvoiceFragment on Invoice {" + invoiceSelection + "}\n"

// An Invoice is a Lightning invoice (BOLT 11) created by a LightsparkNode.
type Invoice struct {
	requester lightspark.Requester

	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      InvoiceData
	Status    PaymentRequestStatus

	// AmountPaid is the total amount that has been paid to this invoice. It's
	// nil until the invoice has been paid.
	AmountPaid *CurrencyAmount
}

var _ PaymentRequest = Invoice{}

// InvoiceFromJSON decodes an Invoice.
func InvoiceFromJSON(requester lightspark.Requester, obj map[string]any) (Invoice, error) {
	r := newReader(requester, obj, "invoice")
	invoice := Invoice{
		requester:  requester,
		ID:         r.String("id"),
		CreatedAt:  r.Time("created_at"),
		UpdatedAt:  r.Time("updated_at"),
		Data:       readObject(r, "data", InvoiceDataFromJSON),
		Status:     readEnum[PaymentRequestStatus](r, "status"),
		AmountPaid: readOptionalObject(r, "amount_paid", CurrencyAmountFromJSON),
	}
	if err := r.Err(); err != nil {
		return Invoice{}, err
	}
	return invoice, nil
}

// Requester returns the Requester this invoice was decoded with, if any.
func (i Invoice) Requester() lightspark.Requester { return i.requester }

func (Invoice) Typename() string { return "Invoice" }

func (i Invoice) GetID() string                   { return i.ID }
func (i Invoice) GetCreatedAt() time.Time         { return i.CreatedAt }
func (i Invoice) GetUpdatedAt() time.Time         { return i.UpdatedAt }
func (i Invoice) GetData() PaymentRequestData     { return i.Data }
func (i Invoice) GetStatus() PaymentRequestStatus { return i.Status }

func (i Invoice) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:           i.Typename(),
		"invoice_id":          i.ID,
		"invoice_created_at":  formatTime(i.CreatedAt),
		"invoice_updated_at":  formatTime(i.UpdatedAt),
		"invoice_data":        i.Data.ToJSON(),
		"invoice_status":      string(i.Status),
		"invoice_amount_paid": optionalJSON(i.AmountPaid),
	}
}
