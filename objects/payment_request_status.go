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

// PaymentRequestStatus is the status of a payment request.
type PaymentRequestStatus string

const (
	PaymentRequestStatusOpen   PaymentRequestStatus = "OPEN"
	PaymentRequestStatusClosed PaymentRequestStatus = "CLOSED"
)

// Known reports whether s is one of the values above. Values added to the
// API after this SDK was built decode unchanged and report false.
func (s PaymentRequestStatus) Known() bool {
	switch s {
	case PaymentRequestStatusOpen,
		PaymentRequestStatusClosed:
		return true
	}
	return false
}

func (s PaymentRequestStatus) String() string {
	return string(s)
}
