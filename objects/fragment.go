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

// Selections are the bodies of the fragments below, without the surrounding
// braces, so they can be nested under aliased fields. Every selection starts
// with __typename and aliases each field with its type's prefix.

const currencyAmountSelection = `
	__typename
	currency_amount_original_value: original_value
	currency_amount_original_unit: original_unit
	currency_amount_preferred_currency_unit: preferred_currency_unit
	currency_amount_preferred_currency_value_rounded: preferred_currency_value_rounded
	currency_amount_preferred_currency_value_approx: preferred_currency_value_approx
`

const blockchainBalanceSelection = `
	__typename
	blockchain_balance_total_balance: total_balance {` + currencyAmountSelection + `}
	blockchain_balance_confirmed_balance: confirmed_balance {` + currencyAmountSelection + `}
	blockchain_balance_unconfirmed_balance: unconfirmed_balance {` + currencyAmountSelection + `}
	blockchain_balance_locked_balance: locked_balance {` + currencyAmountSelection + `}
	blockchain_balance_required_reserve: required_reserve {` + currencyAmountSelection + `}
	blockchain_balance_available_balance: available_balance {` + currencyAmountSelection + `}
`

const secretSelection = `
	__typename
	secret_encrypted_value: encrypted_value
	secret_cipher: cipher
`

const pageInfoSelection = `
	__typename
	page_info_has_next_page: has_next_page
	page_info_has_previous_page: has_previous_page
	page_info_start_cursor: start_cursor
	page_info_end_cursor: end_cursor
`

const graphNodeSelection = `
	__typename
	graph_node_id: id
	graph_node_created_at: created_at
	graph_node_updated_at: updated_at
	graph_node_alias: alias
	graph_node_bitcoin_network: bitcoin_network
	graph_node_color: color
	graph_node_conductivity: conductivity
	graph_node_display_name: display_name
	graph_node_public_key: public_key
`

const lightsparkNodeWithOSKSelection = `
	__typename
	lightspark_node_with_o_s_k_id: id
	lightspark_node_with_o_s_k_created_at: created_at
	lightspark_node_with_o_s_k_updated_at: updated_at
	lightspark_node_with_o_s_k_alias: alias
	lightspark_node_with_o_s_k_bitcoin_network: bitcoin_network
	lightspark_node_with_o_s_k_color: color
	lightspark_node_with_o_s_k_conductivity: conductivity
	lightspark_node_with_o_s_k_display_name: display_name
	lightspark_node_with_o_s_k_public_key: public_key
	lightspark_node_with_o_s_k_owner: owner {
		id
	}
	lightspark_node_with_o_s_k_status: status
	lightspark_node_with_o_s_k_total_balance: total_balance {` + currencyAmountSelection + `}
	lightspark_node_with_o_s_k_total_local_balance: total_local_balance {` + currencyAmountSelection + `}
	lightspark_node_with_o_s_k_local_balance: local_balance {` + currencyAmountSelection + `}
	lightspark_node_with_o_s_k_remote_balance: remote_balance {` + currencyAmountSelection + `}
	lightspark_node_with_o_s_k_blockchain_balance: blockchain_balance {` + blockchainBalanceSelection + `}
	lightspark_node_with_o_s_k_uma_prescreening_utxos: uma_prescreening_utxos
	lightspark_node_with_o_s_k_encrypted_signing_private_key: encrypted_signing_private_key {` + secretSelection + `}
`

const lightsparkNodeWithRemoteSigningSelection = `
	__typename
	lightspark_node_with_remote_signing_id: id
	lightspark_node_with_remote_signing_created_at: created_at
	lightspark_node_with_remote_signing_updated_at: updated_at
	lightspark_node_with_remote_signing_alias: alias
	lightspark_node_with_remote_signing_bitcoin_network: bitcoin_network
	lightspark_node_with_remote_signing_color: color
	lightspark_node_with_remote_signing_conductivity: conductivity
	lightspark_node_with_remote_signing_display_name: display_name
	lightspark_node_with_remote_signing_public_key: public_key
	lightspark_node_with_remote_signing_owner: owner {
		id
	}
	lightspark_node_with_remote_signing_status: status
	lightspark_node_with_remote_signing_total_balance: total_balance {` + currencyAmountSelection + `}
	lightspark_node_with_remote_signing_total_local_balance: total_local_balance {` + currencyAmountSelection + `}
	lightspark_node_with_remote_signing_local_balance: local_balance {` + currencyAmountSelection + `}
	lightspark_node_with_remote_signing_remote_balance: remote_balance {` + currencyAmountSelection + `}
	lightspark_node_with_remote_signing_blockchain_balance: blockchain_balance {` + blockchainBalanceSelection + `}
	lightspark_node_with_remote_signing_uma_prescreening_utxos: uma_prescreening_utxos
`

const lightsparkNodeSelection = `
	__typename
	... on LightsparkNodeWithOSK {` + lightsparkNodeWithOSKSelection + `}
	... on LightsparkNodeWithRemoteSigning {` + lightsparkNodeWithRemoteSigningSelection + `}
`

const nodeSelection = `
	__typename
	... on GraphNode {` + graphNodeSelection + `}
	... on LightsparkNodeWithOSK {` + lightsparkNodeWithOSKSelection + `}
	... on LightsparkNodeWithRemoteSigning {` + lightsparkNodeWithRemoteSigningSelection + `}
`

const invoiceDataSelection = `
	__typename
	invoice_data_encoded_payment_request: encoded_payment_request
	invoice_data_bitcoin_network: bitcoin_network
	invoice_data_payment_hash: payment_hash
	invoice_data_amount: amount {` + currencyAmountSelection + `}
	invoice_data_created_at: created_at
	invoice_data_expires_at: expires_at
	invoice_data_memo: memo
	invoice_data_destination: destination {` + nodeSelection + `}
`

const paymentRequestDataSelection = `
	__typename
	... on InvoiceData {` + invoiceDataSelection + `}
`

const invoiceSelection = `
	__typename
	invoice_id: id
	invoice_created_at: created_at
	invoice_updated_at: updated_at
	invoice_data: data {` + invoiceDataSelection + `}
	invoice_status: status
	invoice_amount_paid: amount_paid {` + currencyAmountSelection + `}
`

const paymentRequestSelection = `
	__typename
	... on Invoice {` + invoiceSelection + `}
`

const accountToNodesConnectionSelection = `
	__typename
	account_to_nodes_connection_count: count
	account_to_nodes_connection_page_info: page_info {` + pageInfoSelection + `}
	account_to_nodes_connection_entities: entities {` + lightsparkNodeSelection + `}
`

const entitySelection = `
	__typename
	... on Invoice {` + invoiceSelection + `}
	... on GraphNode {` + graphNodeSelection + `}
	... on LightsparkNodeWithOSK {` + lightsparkNodeWithOSKSelection + `}
	... on LightsparkNodeWithRemoteSigning {` + lightsparkNodeWithRemoteSigningSelection + `}
`

const connectionSelection = `
	__typename
	... on AccountToNodesConnection {` + accountToNodesConnectionSelection + `}
`
