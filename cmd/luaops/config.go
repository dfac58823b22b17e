// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/tailscale/hujson"
)

type globalConfig struct {
	Debug   bool      `json:"debug"`
	Fold    bool      `json:"fold"`
	Color   colorMode `json:"color"`
	RawPC   bool      `json:"rawPC"`
	History string    `json:"history"`
}

// defaultGlobalConfig returns the configuration used
// when no configuration files are present.
func defaultGlobalConfig() *globalConfig {
	g := &globalConfig{
		Fold:  true,
		Color: colorAuto,
	}
	if cd := cacheDir(); cd != "" {
		g.History = filepath.Join(cd, "luaops", "history")
	}
	return g
}

func (g *globalConfig) mergeFiles(paths iter.Seq[string]) error {
	for path := range paths {
		huJSONData, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		jsonData, err := hujson.Standardize(huJSONData)
		if err != nil {
			return fmt.Errorf("read %s: %v", path, err)
		}
		if err := jsonv2.Unmarshal(jsonData, g, jsonv2.RejectUnknownMembers(false)); err != nil {
			return fmt.Errorf("read %s: %v", path, err)
		}
	}

	return nil
}

// UnmarshalJSONFrom unmarshals the configuration object from the JSON decoder,
// merging any fields in the JSON object with existing values.
func (g *globalConfig) UnmarshalJSONFrom(in *jsontext.Decoder) error {
	tok, err := in.ReadToken()
	if err != nil {
		return err
	}
	if got := tok.Kind(); got != '{' {
		return fmt.Errorf("config must be an object not a %v", got)
	}

	for {
		keyToken, err := in.ReadToken()
		if err != nil {
			return err
		}
		switch kind := keyToken.Kind(); kind {
		case '}':
			return nil
		case '"':
			// Keep going.
		default:
			return fmt.Errorf("unexpected non-string key (%v) in object", kind)
		}

		switch k := keyToken.String(); k {
		case "debug":
			if err := jsonv2.UnmarshalDecode(in, &g.Debug); err != nil {
				return fmt.Errorf("unmarshal config.debug: %w", err)
			}
		case "fold":
			if err := jsonv2.UnmarshalDecode(in, &g.Fold); err != nil {
				return fmt.Errorf("unmarshal config.fold: %w", err)
			}
		case "color":
			var s string
			if err := jsonv2.UnmarshalDecode(in, &s); err != nil {
				return fmt.Errorf("unmarshal config.color: %w", err)
			}
			if err := g.Color.Set(s); err != nil {
				return fmt.Errorf("unmarshal config.color: %w", err)
			}
		case "rawPC":
			if err := jsonv2.UnmarshalDecode(in, &g.RawPC); err != nil {
				return fmt.Errorf("unmarshal config.rawPC: %w", err)
			}
		case "history":
			if err := jsonv2.UnmarshalDecode(in, &g.History); err != nil {
				return fmt.Errorf("unmarshal config.history: %w", err)
			}
		default:
			if reject, _ := jsonv2.GetOption(in.Options(), jsonv2.RejectUnknownMembers); reject {
				return fmt.Errorf("unmarshal config: unknown field %q", k)
			}
			if err := in.SkipValue(); err != nil {
				return err
			}
		}
	}
}
