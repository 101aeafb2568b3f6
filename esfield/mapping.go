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

// Package esfield is the field-type and mapping-category algebra: every
// Elasticsearch field type pairs a Go data type with a Mapping describing
// how that field is declared in an index's mapping body.
//
// Go has no associated-type trait resolution with a pivot type to
// disambiguate "this data type, in this mapping category" the way the
// original Rust client does. Per its own design note for non-Rust targets,
// that pivot becomes two explicit interfaces chosen at the call site:
// Mapping describes the mapping category and its options; FieldType[M]
// pairs a data type with exactly one Mapping category.
package esfield

// Mapping is implemented by every mapping-category marker type. Category
// names the Elasticsearch field type string; Options returns the non-
// default options an index-mapping body should render alongside it.
type Mapping interface {
	Category() string
	Options() map[string]any
}

// Property is one named field of an object/document, in declaration order.
// It lives here, not in esmapping, so esmapping can depend on esfield
// without a cycle back: esmapping.Property and esmapping.PropertiesMapping
// are aliases of this type and of FieldSerializer below.
type Property struct {
	Name    string
	Mapping Mapping
}

// FieldSerializer is implemented by anything that can list its fields in
// declaration order: a nested/object field's Go type (via
// FieldType.AsObjectField) and, via esmapping's alias, a whole document
// type. The two are kept semantically distinct at the call site — a type
// that is both a document and a nested field chooses its serialization by
// which method the caller invokes (AsObjectField vs. the document-level
// esmapping.IndexDocumentMapping), not by overload resolution — even
// though the interface shape itself is shared.
type FieldSerializer interface {
	Properties() []Property
}

// FieldType pairs a Go data type with the one Mapping category it may
// legally be declared under. AsObjectField gives the nested-object view of
// a field whose mapping is itself an object/document.
type FieldType[M Mapping] interface {
	AsObjectField() FieldSerializer
}

// baseMapping implements the option-map bookkeeping shared by every
// concrete mapping type: a small set of possibly-unset options collected
// into a map only when set, generalized from the teacher's codec option-
// parsing loop (internal/rust/codec.go) from "parse my CLI options" to
// "collect my own non-nil mapping options".
type baseMapping struct {
	options map[string]any
}

func (b *baseMapping) set(key string, value any) {
	if b.options == nil {
		b.options = make(map[string]any)
	}
	b.options[key] = value
}

// Options returns a copy of the collected non-default options.
func (b baseMapping) Options() map[string]any {
	if len(b.options) == 0 {
		return nil
	}
	out := make(map[string]any, len(b.options))
	for k, v := range b.options {
		out[k] = v
	}
	return out
}
