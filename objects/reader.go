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
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/mb-custody/lightspark"
)

const typenameKey = "__typename"

// timeLayouts are tried in order. The API sends RFC 3339 with a zone; a naive
// ISO-8601 timestamp is read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// A reader pulls typed fields out of a single JSON object whose keys are all
// aliased with the same prefix. The first failure sticks: later calls return
// zero values and Err reports the original problem.
type reader struct {
	requester lightspark.Requester
	obj       map[string]any
	prefix    string
	err       error
}

func newReader(requester lightspark.Requester, obj map[string]any, prefix string) *reader {
	r := &reader{requester: requester, obj: obj, prefix: prefix}
	if obj == nil {
		r.err = lightspark.Errorf(lightspark.CodeMalformedPayload, "expected a JSON object, got null")
	}
	return r
}

// Err returns the first error encountered, if any.
func (r *reader) Err() error {
	return r.err
}

func (r *reader) key(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + "_" + name
}

// value returns the raw value under name. A missing key always fails. A null
// value fails unless nullable is set; either way ok is false.
func (r *reader) value(name string, nullable bool) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	key := r.key(name)
	v, present := r.obj[key]
	if !present {
		r.err = lightspark.Errorf(lightspark.CodeMalformedPayload, "missing field %q", key)
		return nil, false
	}
	if v == nil {
		if !nullable {
			r.err = lightspark.Errorf(lightspark.CodeMalformedPayload, "field %q is null", key)
		}
		return nil, false
	}
	return v, true
}

func (r *reader) wrongType(name, want string, got any) {
	r.err = lightspark.Errorf(
		lightspark.CodeMalformedPayload,
		"field %q: expected %s, got %T",
		r.key(name),
		want,
		got,
	)
}

// fail records an error returned by a nested decoder, prefixed with the key
// it was read from. The nested error keeps its code.
func (r *reader) fail(name string, err error) {
	r.err = fmt.Errorf("%s: %w", r.key(name), err)
}

func (r *reader) String(name string) string {
	v, ok := r.value(name, false)
	if !ok {
		return ""
	}
	return r.asString(name, v)
}

func (r *reader) OptionalString(name string) *string {
	v, ok := r.value(name, true)
	if !ok {
		return nil
	}
	s := r.asString(name, v)
	if r.err != nil {
		return nil
	}
	return &s
}

func (r *reader) asString(name string, v any) string {
	s, ok := v.(string)
	if !ok {
		r.wrongType(name, "string", v)
	}
	return s
}

func (r *reader) Int64(name string) int64 {
	v, ok := r.value(name, false)
	if !ok {
		return 0
	}
	return r.asInt64(name, v)
}

func (r *reader) OptionalInt64(name string) *int64 {
	v, ok := r.value(name, true)
	if !ok {
		return nil
	}
	n := r.asInt64(name, v)
	if r.err != nil {
		return nil
	}
	return &n
}

func (r *reader) asInt64(name string, v any) int64 {
	n, ok := toInt64(v)
	if !ok {
		r.wrongType(name, "integer", v)
	}
	return n
}

func (r *reader) Float64(name string) float64 {
	v, ok := r.value(name, false)
	if !ok {
		return 0
	}
	f, ok := toFloat64(v)
	if !ok {
		r.wrongType(name, "number", v)
	}
	return f
}

func (r *reader) OptionalBool(name string) *bool {
	v, ok := r.value(name, true)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		r.wrongType(name, "boolean", v)
		return nil
	}
	return &b
}

func (r *reader) Time(name string) time.Time {
	s := r.String(name)
	if r.err != nil {
		return time.Time{}
	}
	t, err := parseTime(s)
	if err != nil {
		r.err = lightspark.Errorf(lightspark.CodeMalformedPayload, "field %q: %w", r.key(name), err)
	}
	return t
}

// Strings reads a required list of strings. An empty list decodes to nil;
// null is a malformed payload.
func (r *reader) Strings(name string) []string {
	items := r.list(name, false)
	var out []string
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			r.wrongType(name, "list of strings", item)
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (r *reader) Object(name string) map[string]any {
	v, ok := r.value(name, false)
	if !ok {
		return nil
	}
	return r.asObject(name, v)
}

func (r *reader) OptionalObject(name string) map[string]any {
	v, ok := r.value(name, true)
	if !ok {
		return nil
	}
	return r.asObject(name, v)
}

func (r *reader) asObject(name string, v any) map[string]any {
	obj, ok := v.(map[string]any)
	if !ok {
		r.wrongType(name, "object", v)
	}
	return obj
}

func (r *reader) list(name string, nullable bool) []any {
	v, ok := r.value(name, nullable)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.wrongType(name, "list", v)
	}
	return items
}

// A decodeFunc is the shape shared by every FromJSON function in this
// package.
type decodeFunc[T any] func(lightspark.Requester, map[string]any) (T, error)

func readObject[T any](r *reader, name string, decode decodeFunc[T]) T {
	var zero T
	obj := r.Object(name)
	if r.err != nil {
		return zero
	}
	v, err := decode(r.requester, obj)
	if err != nil {
		r.fail(name, err)
		return zero
	}
	return v
}

func readOptionalObject[T any](r *reader, name string, decode decodeFunc[T]) *T {
	obj := r.OptionalObject(name)
	if r.err != nil || obj == nil {
		return nil
	}
	v, err := decode(r.requester, obj)
	if err != nil {
		r.fail(name, err)
		return nil
	}
	return &v
}

// readList decodes a required list of objects, preserving order. An empty
// list decodes to nil.
func readList[T any](r *reader, name string, decode decodeFunc[T]) []T {
	items := r.list(name, false)
	var out []T
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			r.wrongType(fmt.Sprintf("%s[%d]", name, i), "object", item)
			return nil
		}
		v, err := decode(r.requester, obj)
		if err != nil {
			r.fail(fmt.Sprintf("%s[%d]", name, i), err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

func readEnum[T ~string](r *reader, name string) T {
	return parseEnum[T](r.String(name))
}

func readOptionalEnum[T ~string](r *reader, name string) *T {
	s := r.OptionalString(name)
	if s == nil {
		return nil
	}
	v := parseEnum[T](*s)
	return &v
}

// typenameOf returns the __typename discriminator of an interface payload.
func typenameOf(obj map[string]any) (string, error) {
	r := newReader(nil, obj, "")
	typename := r.String(typenameKey)
	return typename, r.Err()
}

func parseTime(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
