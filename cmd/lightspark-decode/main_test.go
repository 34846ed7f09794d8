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

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mb-custody/lightspark"
	"github.com/mb-custody/lightspark/internal/assert"
	"github.com/mb-custody/lightspark/internal/stubs"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(nil, env(nil), &bytes.Buffer{})
		assert.Nil(t, err)
		assert.Equal(t, cfg.TypeName, "PaymentRequest")
		assert.Equal(t, cfg.Codec.Name(), "json")
		assert.Zero(t, cfg.In)
		assert.Equal(t, cfg.LogLevel, slog.LevelInfo)
	})

	t.Run("environment", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(nil, env(map[string]string{
			envType:     "Node",
			envCodec:    "protobuf",
			envLogLevel: "debug",
		}), &bytes.Buffer{})
		assert.Nil(t, err)
		assert.Equal(t, cfg.TypeName, "Node")
		assert.Equal(t, cfg.Codec.Name(), "protobuf")
		assert.Equal(t, cfg.LogLevel, slog.LevelDebug)
	})

	t.Run("flags win", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(
			[]string{"-type", "Invoice", "-codec", "protojson", "-in", "x.json", "-log-level", "warn"},
			env(map[string]string{envType: "Node", envCodec: "protobuf"}),
			&bytes.Buffer{},
		)
		assert.Nil(t, err)
		assert.Equal(t, cfg.TypeName, "Invoice")
		assert.Equal(t, cfg.Codec.Name(), "protojson")
		assert.Equal(t, cfg.In, "x.json")
		assert.Equal(t, cfg.LogLevel, slog.LevelWarn)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := loadConfig([]string{"-type", "Transaction"}, env(nil), &bytes.Buffer{})
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnknownType)
		_, err = loadConfig([]string{"-codec", "xml"}, env(nil), &bytes.Buffer{})
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnsupportedCodec)
		_, err = loadConfig([]string{"-log-level", "loud"}, env(nil), &bytes.Buffer{})
		assert.NotNil(t, err)
		_, err = loadConfig([]string{"extra"}, env(nil), &bytes.Buffer{})
		assert.NotNil(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()
		invoice := stubs.NewInvoiceStub().Get()
		payload, err := json.Marshal(invoice.ToJSON())
		assert.Nil(t, err)
		var stdout, stderr bytes.Buffer
		err = run(nil, env(nil), bytes.NewReader(payload), &stdout, &stderr)
		assert.Nil(t, err, assert.Sprintf("stderr: %s", stderr.String()))

		var got map[string]any
		assert.Nil(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.JSONEqual(t, got, invoice.ToJSON())
		assert.True(t, strings.Contains(stdout.String(), "\n  \""), assert.Sprintf("output should be indented"))
		assert.Match(t, stderr.String(), `msg=decoded type=PaymentRequest typename=Invoice bytes=\d+`)
	})

	t.Run("file and codec from environment", func(t *testing.T) {
		t.Parallel()
		conn := stubs.NewAccountToNodesConnectionStub(42).Get()
		codec, _ := lightspark.CodecFor("protobuf")
		payload, err := lightspark.Encode(codec, conn.ToJSON())
		assert.Nil(t, err)
		path := filepath.Join(t.TempDir(), "nodes.pb")
		assert.Nil(t, os.WriteFile(path, payload, 0o600))

		var stdout, stderr bytes.Buffer
		err = run(
			[]string{"-in", path},
			env(map[string]string{envType: "Connection", envCodec: "protobuf"}),
			strings.NewReader(""),
			&stdout,
			&stderr,
		)
		assert.Nil(t, err, assert.Sprintf("stderr: %s", stderr.String()))
		var got map[string]any
		assert.Nil(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.JSONEqual(t, got, conn.ToJSON())
		assert.Match(t, stderr.String(), `typename=AccountToNodesConnection`)
	})

	t.Run("unknown typename", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run(nil, env(nil), strings.NewReader(`{"__typename": "SomeFutureType"}`), &stdout, &stderr)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeUnknownInterface)
		assert.Zero(t, stdout.Len())
		assert.Match(t, stderr.String(), `level=ERROR msg="decode failed" type=PaymentRequest code=UnknownInterface`)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run([]string{"-type", "Secret"}, env(nil), strings.NewReader(`{"secret_cipher": "AES"}`), &stdout, &stderr)
		assert.Equal(t, lightspark.CodeOf(err), lightspark.CodeMalformedPayload)
		assert.Match(t, stderr.String(), `code=MalformedPayload`)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run([]string{"-in", filepath.Join(t.TempDir(), "missing.json")}, env(nil), nil, &stdout, &stderr)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		payload := `{"__typename": "Secret", "secret_encrypted_value": "x", "secret_cipher": "AES"}`
		err := run([]string{"-type", "Secret", "-log-level", "error"}, env(nil), strings.NewReader(payload), &stdout, &stderr)
		assert.Nil(t, err)
		assert.Zero(t, stderr.Len())
		assert.NotEqual(t, stdout.Len(), 0)
	})
}
