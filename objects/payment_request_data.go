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

// PaymentRequestDataFragment selects every implementation of
// PaymentRequestData.
const PaymentRequestDataFragment = "\nfragment PaymentRequestDataFragment on PaymentRequestData {" + paymentRequestDataSelection + "}\n"

// PaymentRequestData is the decoded content of an encoded payment request,
// such as a BOLT 11 invoice.
type PaymentRequestData interface {
	Record

	GetEncodedPaymentRequest() string
	GetBitcoinNetwork() BitcoinNetwork
}

// PaymentRequestDataFromJSON decodes any PaymentRequestData, dispatching on
// __typename.
func PaymentRequestDataFromJSON(requester lightspark.Requester, obj map[string]any) (PaymentRequestData, error) {
	typename, err := typenameOf(obj)
	if err != nil {
		return nil, err
	}
	var data PaymentRequestData
	switch typename {
	case "InvoiceData":
		data, err = InvoiceDataFromJSON(requester, obj)
	default:
		return nil, lightspark.NewUnknownInterfaceError("PaymentRequestData", typename)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
