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
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mb-custody/lightspark/objects"
)

type InvoiceStub struct {
	invoice objects.Invoice
}

func NewInvoiceStub() InvoiceStub {
	created := timestamp()
	data := objects.InvoiceData{
		EncodedPaymentRequest: "lnbcrt" + strings.ToLower(gofakeit.LetterN(180)),
		BitcoinNetwork:        objects.BitcoinNetworkRegtest,
		PaymentHash:           gofakeit.DigitN(64),
		Amount:                NewCurrencyAmountStub().Get(),
		CreatedAt:             created,
		ExpiresAt:             created.Add(24 * time.Hour),
		Memo:                  ptr(gofakeit.Sentence(6)),
		Destination:           NewLightsparkNodeWithOSKStub().Get(),
	}
	return InvoiceStub{invoice: objects.Invoice{
		ID:         "Invoice:" + gofakeit.UUID(),
		CreatedAt:  created,
		UpdatedAt:  created,
		Data:       data,
		Status:     objects.PaymentRequestStatusOpen,
		AmountPaid: nil,
	}}
}

func (s InvoiceStub) WithStatus(status objects.PaymentRequestStatus) InvoiceStub {
	s.invoice.Status = status
	return s
}

func (s InvoiceStub) WithAmountPaid(amount *objects.CurrencyAmount) InvoiceStub {
	s.invoice.AmountPaid = amount
	return s
}

func (s InvoiceStub) WithMemo(memo *string) InvoiceStub {
	s.invoice.Data.Memo = memo
	return s
}

func (s InvoiceStub) WithDestination(node objects.Node) InvoiceStub {
	s.invoice.Data.Destination = node
	return s
}

func (s InvoiceStub) Get() objects.Invoice {
	return s.invoice
}

type AccountToNodesConnectionStub struct {
	conn objects.AccountToNodesConnection
}

// NewAccountToNodesConnectionStub returns a first page holding one node of
// each LightsparkNode implementation out of count in total.
func NewAccountToNodesConnectionStub(count int64) AccountToNodesConnectionStub {
	return AccountToNodesConnectionStub{conn: objects.AccountToNodesConnection{
		Count:    count,
		PageInfo: NewPageInfo(count > 2),
		Entities: []objects.LightsparkNode{
			NewLightsparkNodeWithOSKStub().Get(),
			NewLightsparkNodeWithRemoteSigningStub().Get(),
		},
	}}
}

func (s AccountToNodesConnectionStub) WithEntities(nodes ...objects.LightsparkNode) AccountToNodesConnectionStub {
	s.conn.Entities = nodes
	return s
}

func (s AccountToNodesConnectionStub) Get() objects.AccountToNodesConnection {
	return s.conn
}
