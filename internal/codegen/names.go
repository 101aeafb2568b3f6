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

package codegen

import "github.com/iancoleman/strcase"

// goFieldName derives the exported Go struct field name for a placeholder or
// query-parameter name, e.g. "node_id" -> "NodeId".
func goFieldName(name string) string {
	return strcase.ToCamel(name)
}

// goKeywords are the identifiers goArgName must not collide with. "type" is
// the one that actually occurs in the Elasticsearch spec's placeholder
// names.
var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
}

// goArgName escapes a parameter name that would otherwise collide with a Go
// keyword, e.g. the "type" URL part becomes the argument "type_".
func goArgName(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}

// goPackageName derives a Go package name from a dotted endpoint name, e.g.
// "indices.put_mapping" -> "indicesputmapping". Every endpoint gets its own
// package under gen/, mirroring the teacher's one-package-per-service split.
func goPackageName(endpointName string) string {
	out := ""
	for _, r := range endpointName {
		if r == '.' || r == '_' {
			continue
		}
		out += string(r)
	}
	return out
}
