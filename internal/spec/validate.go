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
	"fmt"
	"slices"
)

// Normalize mutates e so that every path begins with "/" and, when Paths is
// empty, Paths holds Path (spec.md §3's ingest-time normalization
// requirement). A Path missing from a non-empty Paths is left for Validate
// to report.
func (e *Endpoint) Normalize() {
	e.URL.Path = Normalize(e.URL.Path)
	for i, p := range e.URL.Paths {
		e.URL.Paths[i] = Normalize(p)
	}
	if len(e.URL.Paths) == 0 {
		e.URL.Paths = []string{e.URL.Path}
	}
}

// Validate checks every invariant spec.md §3 places on an Endpoint:
//
//   - every {placeholder} in every path has a matching entry in Parts,
//   - Path is one of Paths,
//   - every path begins with "/".
func (e *Endpoint) Validate() error {
	if e.URL.Path == "" {
		return fmt.Errorf("endpoint %q: url.path is empty", e.Name)
	}
	if !hasPrefix(e.URL.Path, "/") {
		return fmt.Errorf("endpoint %q: path %q does not start with '/'", e.Name, e.URL.Path)
	}
	if !slices.Contains(e.URL.Paths, e.URL.Path) {
		return fmt.Errorf("endpoint %q: path %q is not listed in paths %v", e.Name, e.URL.Path, e.URL.Paths)
	}
	for _, p := range e.URL.Paths {
		if !hasPrefix(p, "/") {
			return fmt.Errorf("endpoint %q: path %q does not start with '/'", e.Name, p)
		}
		for _, name := range Placeholders(p) {
			if _, ok := e.URL.Parts[name]; !ok {
				return fmt.Errorf("endpoint %q: path %q references undeclared part %q", e.Name, p, name)
			}
		}
	}
	return nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
