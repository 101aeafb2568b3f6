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

// Package codegen is the C3/C4 emitter: it turns a spec.Endpoint and its
// synthesized paramset.Union into Go source text, via embedded mustache
// templates (github.com/cbroglie/mustache), in the same
// embed.FS-plus-TemplateProvider shape the teacher's internal/rust and
// internal/language packages use for their own target language.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elastic-go/estc/internal/paramset"
	"github.com/elastic-go/estc/internal/spec"
)

// buildURLBody renders the body of the Url() method for one variant, per
// spec.md §4.2: a borrowed static UrlPath for a literal-only path, or an
// exact-capacity strings.Builder assembly for a path with placeholders.
//
// path is the canonical source path for the variant (the first one
// synthesized, per spec.md §9's dedupe-keep-first policy); fields maps each
// placeholder name to the Go struct field holding its value.
func buildURLBody(path string, fields map[string]string) string {
	fragments := spec.SplitPath(path)

	hasPlaceholder := false
	for _, f := range fragments {
		if f.IsPlaceholder() {
			hasPlaceholder = true
			break
		}
	}
	if !hasPlaceholder {
		return fmt.Sprintf("\treturn esparams.UrlPath(%s)", strconv.Quote(path))
	}

	literalLen := 0
	var lenTerms []string
	for _, f := range fragments {
		if !f.IsPlaceholder() {
			literalLen += len(*f.Literal)
			continue
		}
		field := fields[*f.Placeholder]
		lenTerms = append(lenTerms, fmt.Sprintf("len(v.%s)", field))
	}
	capacityExpr := strconv.Itoa(literalLen)
	for _, term := range lenTerms {
		capacityExpr += " + " + term
	}

	var b strings.Builder
	b.WriteString("\tvar buf strings.Builder\n")
	fmt.Fprintf(&b, "\tbuf.Grow(%s)\n", capacityExpr)
	for _, f := range fragments {
		if !f.IsPlaceholder() {
			fmt.Fprintf(&b, "\tbuf.WriteString(%s)\n", strconv.Quote(*f.Literal))
			continue
		}
		field := fields[*f.Placeholder]
		fmt.Fprintf(&b, "\tbuf.WriteString(string(v.%s))\n", field)
	}
	b.WriteString("\treturn esparams.UrlPath(buf.String())")
	return b.String()
}

// fieldNamesFor maps each Param's source name to the Go field name used in
// its variant struct (the PascalCase of the placeholder name).
func fieldNamesFor(params []paramset.Param) map[string]string {
	fields := make(map[string]string, len(params))
	for _, p := range params {
		fields[p.Name] = goFieldName(p.Name)
	}
	return fields
}
