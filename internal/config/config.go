// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides functionality for working with esgen.toml, the
// generator's configuration file.
package config

import (
	"fmt"
	"maps"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// GeneralConfig holds the parameters that drive one generation run.
type GeneralConfig struct {
	SpecDir       string `toml:"spec-dir,omitempty"`
	OutputDir     string `toml:"output-dir,omitempty"`
	ModulePath    string `toml:"module-path,omitempty"`
	IncludeHidden bool   `toml:"include-hidden,omitempty"`
}

// Config is the full contents of esgen.toml, plus any per-endpoint codec
// options a future template may key off of.
type Config struct {
	General GeneralConfig     `toml:"general"`
	Codec   map[string]string `toml:"codec,omitempty"`
}

// Default returns the configuration used when no esgen.toml is present.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			SpecDir:    "testdata/rest-api-spec/api",
			OutputDir:  "gen",
			ModulePath: "github.com/elastic-go/estc/gen",
		},
		Codec: map[string]string{},
	}
}

// Load reads filename, merging it over Default(). A missing file is not an
// error — it just means the defaults apply — but a present-and-malformed
// file is.
func Load(filename string) (*Config, error) {
	base := Default()
	contents, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	var file Config
	if err := toml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return mergeConfigs(base, &file), nil
}

// mergeConfigs overlays local's explicitly-set fields onto base.
func mergeConfigs(base, local *Config) *Config {
	merged := &Config{General: base.General, Codec: maps.Clone(base.Codec)}
	if merged.Codec == nil {
		merged.Codec = map[string]string{}
	}
	if local.General.SpecDir != "" {
		merged.General.SpecDir = local.General.SpecDir
	}
	if local.General.OutputDir != "" {
		merged.General.OutputDir = local.General.OutputDir
	}
	if local.General.ModulePath != "" {
		merged.General.ModulePath = local.General.ModulePath
	}
	if local.General.IncludeHidden {
		merged.General.IncludeHidden = true
	}
	for k, v := range local.Codec {
		merged.Codec[k] = v
	}
	return merged
}
