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

package lightspark

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	codecNameJSON      = "json"
	codecNameProtoJSON = "protojson"
	codecNameProtobuf  = "protobuf"
)

// A Codec converts between wire bytes and the JSON objects (map[string]any)
// consumed by the objects package decoders.
//
// Lightspark's GraphQL endpoint speaks plain JSON. The two Struct codecs
// cover payloads relayed as google.protobuf.Struct, for example through a
// Connect or gRPC bridge. Note that Struct stores every number as a double,
// so integers beyond 2^53 lose precision on those codecs.
type Codec interface {
	Name() string
	Marshal(any) ([]byte, error)
	Unmarshal([]byte, any) error
}

var codecs = map[string]Codec{
	codecNameJSON:      &codecJSON{},
	codecNameProtoJSON: &codecProtoJSON{},
	codecNameProtobuf:  &codecProtobuf{},
}

// CodecFor returns the named codec.
func CodecFor(name string) (Codec, bool) {
	codec, ok := codecs[name]
	return codec, ok
}

// CodecNames returns the registered codec names in sorted order. The returned
// slice is safe for the caller to mutate.
func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode unmarshals a single JSON object from data. A payload that isn't an
// object, or is null, is a CodeMalformedPayload error.
func Decode(codec Codec, data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := codec.Unmarshal(data, &obj); err != nil {
		return nil, wrapIfUncoded(CodeMalformedPayload, err)
	}
	if obj == nil {
		return nil, Errorf(CodeMalformedPayload, "%s payload is null", codec.Name())
	}
	return obj, nil
}

// Encode marshals obj with the supplied codec.
func Encode(codec Codec, obj map[string]any) ([]byte, error) {
	data, err := codec.Marshal(obj)
	if err != nil {
		return nil, wrapIfUncoded(CodeUnsupportedCodec, err)
	}
	return data, nil
}

type codecJSON struct{}

var _ Codec = (*codecJSON)(nil)

func (c *codecJSON) Name() string { return codecNameJSON }

// Marshal doesn't escape HTML: memos and descriptions routinely contain '<',
// '>' and '&', and the API never renders them as HTML.
func (c *codecJSON) Marshal(value any) ([]byte, error) {
	if s, ok := value.(*structpb.Struct); ok {
		return protojson.Marshal(s)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Unmarshal decodes numbers as json.Number so that int64 fields survive
// without a trip through float64.
func (c *codecJSON) Unmarshal(data []byte, value any) error {
	if s, ok := value.(*structpb.Struct); ok {
		return protojson.Unmarshal(data, s)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(value); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("json payload has trailing data")
	}
	return nil
}

type codecProtoJSON struct {
	marshalOptions   protojson.MarshalOptions
	unmarshalOptions protojson.UnmarshalOptions
}

var _ Codec = (*codecProtoJSON)(nil)

func (c *codecProtoJSON) Name() string { return codecNameProtoJSON }

func (c *codecProtoJSON) Marshal(value any) ([]byte, error) {
	s, err := asStruct(value)
	if err != nil {
		return nil, err
	}
	return c.marshalOptions.Marshal(s)
}

func (c *codecProtoJSON) Unmarshal(data []byte, value any) error {
	return intoStruct(value, func(s *structpb.Struct) error {
		return c.unmarshalOptions.Unmarshal(data, s)
	})
}

type codecProtobuf struct{}

var _ Codec = (*codecProtobuf)(nil)

func (c *codecProtobuf) Name() string { return codecNameProtobuf }

func (c *codecProtobuf) Marshal(value any) ([]byte, error) {
	s, err := asStruct(value)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func (c *codecProtobuf) Unmarshal(data []byte, value any) error {
	return intoStruct(value, func(s *structpb.Struct) error {
		return proto.Unmarshal(data, s)
	})
}

func asStruct(value any) (*structpb.Struct, error) {
	switch v := value.(type) {
	case *structpb.Struct:
		return v, nil
	case map[string]any:
		return structpb.NewStruct(v)
	default:
		return nil, errNotStruct(value)
	}
}

// intoStruct runs unmarshal against a Struct, then copies the result into
// value if the caller asked for a plain map.
func intoStruct(value any, unmarshal func(*structpb.Struct) error) error {
	switch v := value.(type) {
	case *structpb.Struct:
		return unmarshal(v)
	case *map[string]any:
		var s structpb.Struct
		if err := unmarshal(&s); err != nil {
			return err
		}
		*v = s.AsMap()
		return nil
	default:
		return errNotStruct(value)
	}
}

func errNotStruct(v any) error {
	return Errorf(CodeUnsupportedCodec, "%T can't be converted to google.protobuf.Struct", v)
}

// wrapIfUncoded leaves errors that already carry a code unchanged and wraps
// everything else with c.
func wrapIfUncoded(c Code, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	return NewError(c, err)
}
