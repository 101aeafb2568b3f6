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

import "strings"

// SplitPath decomposes a URL path template into an ordered sequence of
// literal and placeholder fragments.
//
//	SplitPath("/{index}/part/{type}") ==
//	    []Fragment{literal("/"), placeholder("index"), literal("/part/"), placeholder("type")}
func SplitPath(path string) []Fragment {
	var fragments []Fragment
	for len(path) > 0 {
		if path[0] == '{' {
			end := strings.IndexByte(path, '}')
			if end == -1 {
				name := path[1:]
				fragments = append(fragments, placeholder(name))
				break
			}
			name := path[1:end]
			fragments = append(fragments, placeholder(name))
			path = path[end+1:]
			continue
		}
		end := strings.IndexByte(path, '{')
		if end == -1 {
			fragments = append(fragments, literal(path))
			break
		}
		fragments = append(fragments, literal(path[:end]))
		path = path[end:]
	}
	return fragments
}

// Placeholders returns, in textual order, the names of every `{placeholder}`
// appearing in path.
func Placeholders(path string) []string {
	var names []string
	for _, f := range SplitPath(path) {
		if f.IsPlaceholder() {
			names = append(names, *f.Placeholder)
		}
	}
	return names
}

func literal(s string) Fragment {
	return Fragment{Literal: &s}
}

func placeholder(s string) Fragment {
	return Fragment{Placeholder: &s}
}

// Normalize rewrites path to begin with a leading `/`, per spec.md's
// ingest-time normalization requirement.
func Normalize(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
