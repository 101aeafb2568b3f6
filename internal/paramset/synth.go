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

package paramset

import (
	"fmt"
	"log/slog"

	"github.com/iancoleman/strcase"

	"github.com/elastic-go/estc/internal/spec"
)

// Param is one placeholder bound to a variant, in the path's textual order.
type Param struct {
	Name    string // e.g. "index"
	Wrapper string // e.g. "Index"
}

// Variant is one legal combination of URL placeholders for an endpoint.
type Variant struct {
	// Name is the PascalCase concatenation of its placeholder names, e.g.
	// "IndexType", or the literal "None" for the placeholder-free variant.
	Name string
	// Params are this variant's placeholders, in path order.
	Params []Param
	// Paths lists every source path template that produced this variant,
	// in declaration order. A variant carries more than one path only when
	// spec.md §4.1's dedupe-by-identical-URL rule applies.
	Paths []string
}

// Union is the tagged union of all of an endpoint's legal parameter sets.
type Union struct {
	// Name is the generated enum's type name, e.g. "SearchUrlParams".
	Name string
	// Variants preserves the endpoint's original path declaration order.
	Variants []Variant
}

// CollisionError reports two paths that produce the same variant name but
// render different URLs — a generator-level error per spec.md §4.1/§9,
// unless the two paths are textually identical (then Synthesize collapses
// them instead of erroring).
type CollisionError struct {
	Endpoint    string
	VariantName string
	Paths       []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf(
		"endpoint %q: paths %v collide on url-parameter variant %q but render different URLs",
		e.Endpoint, e.Paths, e.VariantName,
	)
}

// Synthesize derives e's URL-params union from its path templates, per
// spec.md §4.1:
//
//  1. extract each path's placeholder sequence in textual order,
//  2. resolve each placeholder to its esparams wrapper,
//  3. name the variant (PascalCase concatenation, or "None"),
//  4. collect variants preserving path declaration order, collapsing
//     variants with identical names+rendered shape and erroring on
//     variants with identical names but different shape.
func Synthesize(e *spec.Endpoint) (*Union, error) {
	union := &Union{Name: strcase.ToCamel(e.Name) + "UrlParams"}

	seen := map[string]*Variant{}
	var order []string
	if len(e.URL.Paths) == 0 {
		return nil, fmt.Errorf("endpoint %q: no paths to synthesize a url-parameter union from", e.Name)
	}
	for _, path := range e.URL.Paths {
		placeholders := spec.Placeholders(path)
		variantName := "None"
		var params []Param
		for _, name := range placeholders {
			wrapper, err := WrapperFor(name)
			if err != nil {
				return nil, fmt.Errorf("endpoint %q, path %q: %w", e.Name, path, err)
			}
			params = append(params, Param{Name: name, Wrapper: wrapper})
		}
		if len(placeholders) > 0 {
			variantName = pascalConcat(placeholders)
		}

		if existing, ok := seen[variantName]; ok {
			if !sameShape(existing.Paths[0], path) {
				return nil, &CollisionError{
					Endpoint:    e.Name,
					VariantName: variantName,
					Paths:       append(append([]string{}, existing.Paths...), path),
				}
			}
			slog.Debug("collapsing url-parameter variant", "endpoint", e.Name, "variant", variantName, "path", path)
			existing.Paths = append(existing.Paths, path)
			continue
		}

		v := &Variant{Name: variantName, Params: params, Paths: []string{path}}
		seen[variantName] = v
		order = append(order, variantName)
	}

	for _, name := range order {
		union.Variants = append(union.Variants, *seen[name])
	}
	return union, nil
}

func pascalConcat(names []string) string {
	out := ""
	for _, n := range names {
		out += strcase.ToCamel(n)
	}
	return out
}

// sameShape reports whether two path templates render an identical URL for
// any given placeholder values, i.e. they are textually identical once
// placeholder names are disregarded (spec.md §4.1's "same URL shape").
func sameShape(a, b string) bool {
	fa, fb := spec.SplitPath(a), spec.SplitPath(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i].IsPlaceholder() != fb[i].IsPlaceholder() {
			return false
		}
		if fa[i].IsPlaceholder() {
			continue // different placeholder *names* are fine; only shape matters.
		}
		if *fa[i].Literal != *fb[i].Literal {
			return false
		}
	}
	return true
}
