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

// Command lightspark-decode reads a Lightspark API payload, decodes it as the
// named GraphQL type and writes the re-encoded object to stdout as indented
// JSON. It's handy for checking captured responses against this SDK:
//
//	lightspark-decode -type AccountToNodesConnection -in nodes.json
//	curl ... | lightspark-decode -type Entity
//
// Configuration is read from flags, then from the environment (a .env file in
// the working directory is loaded first).
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mb-custody/lightspark"
	"github.com/mb-custody/lightspark/objects"
)

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, getenv, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := decode(cfg, stdin, stdout, logger); err != nil {
		logger.Error("decode failed",
			slog.String("type", cfg.TypeName),
			slog.String("code", lightspark.CodeOf(err).String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func decode(cfg *config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	in := stdin
	if cfg.In != "" {
		f, err := os.Open(cfg.In)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	logger.Debug("read payload", slog.String("codec", cfg.Codec.Name()), slog.Int("bytes", len(data)))

	obj, err := lightspark.Decode(cfg.Codec, data)
	if err != nil {
		return err
	}
	record, err := objects.Decode(nil, cfg.TypeName, obj)
	if err != nil {
		return err
	}
	logger.Info("decoded",
		slog.String("type", cfg.TypeName),
		slog.String("typename", record.Typename()),
		slog.Int("bytes", len(data)),
	)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record.ToJSON()); err != nil {
		return err
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}
