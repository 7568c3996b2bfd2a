// Copyright 2026 The Kartoffels Authors
// This file is part of Kartoffels.
//
// Kartoffels is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kartoffels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kartoffels. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the kartoffelsd process configuration from a TOML
// file, in the idiom of the teacher's cmd/gprobe/config.go: struct field
// names map onto TOML keys verbatim and unrecognized keys are a hard error.
package config

import (
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
)

// tomlSettings mirrors the teacher's NormFieldName/FieldToKey/MissingField
// customization so Config's Go field names are used as-is in the file, and
// typos in a config file surface as load errors instead of being ignored.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// WorldDefaults is the policy template applied to worlds that don't
// explicitly override it (spec.md §4.3, §5).
type WorldDefaults struct {
	MaxAliveBots    int
	MaxQueuedBots   int
	TickBudgetSteps int
	AutoRespawn     bool
}

// Config is the top-level kartoffelsd configuration.
type Config struct {
	WorldsDir     string
	Listen        string
	MaxWorlds     int
	WorldDefaults WorldDefaults
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		WorldsDir: "./worlds",
		Listen:    "127.0.0.1:1477",
		MaxWorlds: 128,
		WorldDefaults: WorldDefaults{
			MaxAliveBots:    16,
			MaxQueuedBots:   16,
			TickBudgetSteps: 65536,
			AutoRespawn:     false,
		},
	}
}

// LoadFile reads and parses a TOML config file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	if err := tomlSettings.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
