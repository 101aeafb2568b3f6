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

import (
	"embed"
	"fmt"
	"go/format"
	"path"

	"github.com/cbroglie/mustache"
)

//go:embed templates/*.mustache
var templatesFS embed.FS

// TemplateProvider resolves a template name (without its .mustache
// extension) to its contents, mirroring the teacher's
// internal/language.mustacheProvider shape: the generator itself never
// reads the filesystem, only this indirection, so templates can later be
// swapped or overridden without touching the generation code.
type TemplateProvider func(name string) (string, error)

// embeddedTemplates is the TemplateProvider backed by templatesFS.
func embeddedTemplates(name string) (string, error) {
	b, err := templatesFS.ReadFile(path.Join("templates", name+".mustache"))
	if err != nil {
		return "", fmt.Errorf("template %q: %w", name, err)
	}
	return string(b), nil
}

// GeneratedFile is one output file produced for an endpoint: its relative
// path under the generator's output root and its formatted contents.
type GeneratedFile struct {
	Path     string
	Contents []byte
}

// GenerateRequest renders the request.go.mustache template for data and
// gofmt's the result, the same render-then-format pipeline the teacher's
// internal/language.GenerateClient runs for every language target.
func GenerateRequest(data *EndpointData) (*GeneratedFile, error) {
	return generateFile(data, "request", embeddedTemplates)
}

func generateFile(data *EndpointData, template string, provider TemplateProvider) (*GeneratedFile, error) {
	tmpl, err := provider(template)
	if err != nil {
		return nil, err
	}
	rendered, err := mustache.Render(tmpl, data)
	if err != nil {
		return nil, fmt.Errorf("rendering %s template for %q: %w", template, data.EndpointName, err)
	}
	formatted, err := format.Source([]byte(rendered))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source for %q: %w\n%s", data.EndpointName, err, rendered)
	}
	return &GeneratedFile{
		Path:     path.Join(data.PackageName, "request.go"),
		Contents: formatted,
	}, nil
}
