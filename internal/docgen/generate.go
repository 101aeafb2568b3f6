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

package docgen

import (
	"embed"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/cbroglie/mustache"
)

//go:embed templates/*.mustache
var templatesFS embed.FS

// fileData feeds document.go.mustache: one rendered Go file covering every
// "elastic:document" struct found in the source file, sharing one import
// block.
type fileData struct {
	PackageName  string
	Documents    []*documentData
	NeedsFmt     bool
	NeedsEsdate  bool
	NeedsEsfield bool
	ExtraImports []string
}

// stdlibExprPackages is the set of standard-library packages an
// index(expr=...)/ty(expr=...)/id(expr=...) attribute may reference by
// qualified identifier. docgen splices these expressions verbatim into the
// generated method body (it does not interpret them, the same way a derive
// macro splices rather than evaluates), so it cannot know in general what a
// user's expression imports; this fixed whitelist covers the common case
// (string conversions) without docgen becoming a Go type-checker.
var stdlibExprPackages = []string{"strconv", "strings", "fmt", "time"}

func detectExtraImports(exprs ...string) []string {
	var found []string
	for _, pkg := range stdlibExprPackages {
		prefix := pkg + "."
		for _, expr := range exprs {
			if strings.Contains(expr, prefix) {
				found = append(found, pkg)
				break
			}
		}
	}
	return found
}

// Generate parses filename for "elastic:document" structs and renders the
// mapping/document-type source for all of them as one formatted Go file.
// Returns (nil, nil) if filename has no annotated structs.
func Generate(filename string) ([]byte, error) {
	packageName, specs, err := ParseFile(filename)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, nil
	}

	docNames := make(map[string]bool, len(specs))
	for _, s := range specs {
		docNames[s.Name] = true
	}

	data := &fileData{PackageName: packageName}
	extra := map[string]bool{}
	for _, spec := range specs {
		doc, err := BuildDocumentData(spec, docNames)
		if err != nil {
			return nil, err
		}
		data.Documents = append(data.Documents, doc)
		if strings.Contains(doc.IDBody, "fmt.") || strings.Contains(doc.IndexExpr, "fmt.") || strings.Contains(doc.TypeExpr, "fmt.") {
			data.NeedsFmt = true
		}
		for _, p := range doc.Properties {
			if strings.Contains(p.MappingExpr, "esdate.") {
				data.NeedsEsdate = true
			}
			if strings.Contains(p.MappingExpr, "esfield.") {
				data.NeedsEsfield = true
			}
		}
		for _, pkg := range detectExtraImports(doc.IndexExpr, doc.TypeExpr, doc.IDBody) {
			extra[pkg] = true
		}
	}
	delete(extra, "fmt") // tracked separately via NeedsFmt
	for pkg := range extra {
		data.ExtraImports = append(data.ExtraImports, pkg)
	}
	sort.Strings(data.ExtraImports)

	tmpl, err := templatesFS.ReadFile("templates/document.go.mustache")
	if err != nil {
		return nil, fmt.Errorf("reading document template: %w", err)
	}
	rendered, err := mustache.Render(string(tmpl), data)
	if err != nil {
		return nil, fmt.Errorf("rendering document template for %s: %w", filename, err)
	}
	formatted, err := format.Source([]byte(rendered))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source for %s: %w\n%s", filename, err, rendered)
	}
	return formatted, nil
}
