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

package spec

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Load reads every `*.json` file in dir, one Elasticsearch endpoint
// definition per file (the layout used by the real
// `elasticsearch/elasticsearch-specification` `rest-api-spec/api`
// directory), normalizes and validates each, and returns the combined Spec
// sorted by endpoint name for deterministic generation order.
//
// A file that fails to parse or validate does not stop the whole load: all
// errors are collected and returned together via errors.Join, the way
// internal/parser/openapi.go joins schema-build errors in the teacher.
func Load(dir string) (*Spec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading spec directory %q: %w", dir, err)
	}

	var endpoints []*Endpoint
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		parsed, err := loadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		endpoints = append(endpoints, parsed...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sortEndpoints(endpoints)
	slog.Debug("loaded elasticsearch spec", "dir", dir, "endpoints", len(endpoints))
	return &Spec{Endpoints: endpoints}, nil
}

func loadFile(path string) ([]*Endpoint, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]Endpoint
	if err := json.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("invalid endpoint JSON: %w", err)
	}
	endpoints := make([]*Endpoint, 0, len(raw))
	for name, e := range raw {
		e := e
		e.Name = name
		e.Normalize()
		if err := e.Validate(); err != nil {
			return nil, err
		}
		endpoints = append(endpoints, &e)
	}
	return endpoints, nil
}
