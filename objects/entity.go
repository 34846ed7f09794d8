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

// Package objects contains the Lightspark API entities: one Go type per
// GraphQL object, interface, or connection, each with a FromJSON decoder, a
// ToJSON encoder and the GraphQL fragment that selects its fields.
//
// Field keys on the wire are aliased with the snake-cased type name (an
// Invoice's id arrives as "invoice_id") so that fragments for several types
// can be merged into one query without collisions. Decoders read, and
// encoders write, exactly those aliased keys plus "__typename".
//
// Interface types such as PaymentRequest and Node are Go interfaces. Their
// FromJSON functions switch on "__typename" and fail with
// lightspark.CodeUnknownInterface on a discriminator this SDK doesn't know.
// Enumerations are lenient instead: an unknown value decodes as-is and
// reports false from Known.
package objects

import (
	"time"

	"github.com/mb-custody/lightspark"
)

// A Record is any concrete or interface type that has a GraphQL
// __typename. Typename is constant per Go type, so an encoded record always
// carries the discriminator it was decoded under.
type Record interface {
	Typename() string
	ToJSON() map[string]any
}

// Entity is the interface implemented by every object persisted by
// Lightspark, identified by an opaque ID.
type Entity interface {
	Record

	// GetID returns the unique identifier of this entity across all
	// Lightspark systems. Treat it as an opaque string.
	GetID() string

	// GetCreatedAt returns when the entity was first created.
	GetCreatedAt() time.Time

	// GetUpdatedAt returns when the entity was last updated.
	GetUpdatedAt() time.Time
}

// EntityFromJSON decodes any Entity, dispatching on __typename.
func EntityFromJSON(requester lightspark.Requester, obj map[string]any) (Entity, error) {
	typename, err := typenameOf(obj)
	if err != nil {
		return nil, err
	}
	var entity Entity
	switch typename {
	case "Invoice":
		entity, err = InvoiceFromJSON(requester, obj)
	case "GraphNode":
		entity, err = GraphNodeFromJSON(requester, obj)
	case "LightsparkNodeWithOSK":
		entity, err = LightsparkNodeWithOSKFromJSON(requester, obj)
	case "LightsparkNodeWithRemoteSigning":
		entity, err = LightsparkNodeWithRemoteSigningFromJSON(requester, obj)
	default:
		return nil, lightspark.NewUnknownInterfaceError("Entity", typename)
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// An EntityWrapper is a reference to another entity by ID, used where a
// fragment selects only "{ id }" of a related object.
type EntityWrapper struct {
	ID string
}

// EntityWrapperFromJSON decodes an unaliased {"id": ...} reference.
func EntityWrapperFromJSON(_ lightspark.Requester, obj map[string]any) (EntityWrapper, error) {
	r := newReader(nil, obj, "")
	w := EntityWrapper{ID: r.String("id")}
	return w, r.Err()
}

func (w EntityWrapper) ToJSON() map[string]any {
	return map[string]any{"id": w.ID}
}
