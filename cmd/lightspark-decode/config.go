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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mb-custody/lightspark"
	"github.com/mb-custody/lightspark/objects"
)

const (
	envType     = "LIGHTSPARK_DECODE_TYPE"
	envCodec    = "LIGHTSPARK_DECODE_CODEC"
	envLogLevel = "LIGHTSPARK_LOG_LEVEL"
)

type config struct {
	TypeName string
	Codec    lightspark.Codec
	In       string
	LogLevel slog.Level
}

// loadConfig parses flags, falling back to the environment and then to
// defaults. Flags win over the environment.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (*config, error) {
	flags := flag.NewFlagSet("lightspark-decode", flag.ContinueOnError)
	flags.SetOutput(stderr)
	typeName := flags.String(
		"type",
		firstNonEmpty(getenv(envType), "PaymentRequest"),
		"GraphQL type to decode, one of: "+strings.Join(objects.TypeNames(), ", "),
	)
	codecName := flags.String(
		"codec",
		firstNonEmpty(getenv(envCodec), "json"),
		"payload encoding, one of: "+strings.Join(lightspark.CodecNames(), ", "),
	)
	in := flags.String("in", "", "file to read the payload from (default stdin)")
	logLevel := flags.String("log-level", firstNonEmpty(getenv(envLogLevel), "info"), "debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if _, ok := objects.Lookup(*typeName); !ok {
		return nil, lightspark.Errorf(lightspark.CodeUnknownType, "no decoder for type %q", *typeName)
	}
	codec, ok := lightspark.CodecFor(*codecName)
	if !ok {
		return nil, lightspark.Errorf(lightspark.CodeUnsupportedCodec, "unknown codec %q", *codecName)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return &config{
		TypeName: *typeName,
		Codec:    codec,
		In:       *in,
		LogLevel: level,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
