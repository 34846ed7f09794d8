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

// PaymentRequestFragment selects every implementation of PaymentRequest.
const PaymentRequestFragment = "\nfragment PaymentRequestFragment on PaymentRequest {" + paymentRequestSelection + "}\n"

// A PaymentRequest contains information related to a payment request
// generated or received by a LightsparkNode. Retrieve it to receive payment
// information about a specific invoice.
type PaymentRequest interface {
	Entity

	// GetData returns the details of the payment request.
	GetData() PaymentRequestData

	// GetStatus returns the status of the payment request.
	GetStatus() PaymentRequestStatus
}

// PaymentRequestFromJSON decodes any PaymentRequest, dispatching on
// __typename. Only the keys aliased for the matched implementation are read.
func PaymentRequestFromJSON(requester lightspark.Requester, obj map[string]any) (PaymentRequest, error) {
	typename, err := typenameOf(obj)
	if err != nil {
		return nil, err
	}
	var request PaymentRequest
	switch typename {
	case "Invoice":
		request, err = InvoiceFromJSON(requester, obj)
	default:
		return nil, lightspark.NewUnknownInterfaceError("PaymentRequest", typename)
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}
