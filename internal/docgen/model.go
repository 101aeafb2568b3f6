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

// Package docgen is the offline half of the DocumentType derive: given a Go
// source file with structs marked by an "elastic:document" doc-comment
// directive, it emits the mapping type, PropertiesMapping realization, and
// DocumentType methods a hand-written record needs to participate in
// esfield/esmapping, the way a procedural derive macro would in a language
// that has one.
//
// Go has no macro-time AST rewriting, so this runs as a go generate step
// (cmd/esdoc) rather than at compile time: the spec's own design notes call
// this out as the correct substitution when only one of the two emission
// paths a derive macro would offer (offline source generation vs.
// compile-time derive) is available.
package docgen

import "go/ast"

// FieldSpec is one struct field docgen has decided to turn into a mapped
// property, after applying json/elastic tag renaming and skip rules.
type FieldSpec struct {
	GoName   string
	ESName   string
	GoType   ast.Expr
	IsID     bool
	Override string            // elastic tag's "type=" override, or "" for the default inferred from GoType
	Options  map[string]string // remaining elastic tag key=value pairs (analyzer, date_format, ...)
}

// DocumentSpec is one "elastic:document"-annotated struct, fully resolved:
// everything docgen.Generate needs to emit <Name>Mapping, <Name>Nested,
// Properties, and the DocumentType method set.
type DocumentSpec struct {
	Name        string
	MappingName string
	Fields      []FieldSpec

	IndexLiteral string // "" if not statically known
	IndexExpr    string // Go expression text, evaluated against receiver d; "" if not set
	TypeLiteral  string
	TypeExpr     string
	IDExpr       string // struct-level id(expr=...); takes priority over a field-level id
}

// AttributeError is a located docgen diagnostic: a malformed
// "elastic:document" directive, struct tag, or unparseable expression
// fragment. docgen never swallows these, matching spec.md's "derive errors
// are compiler diagnostics, not swallowed" requirement.
type AttributeError struct {
	File    string
	Struct  string
	Field   string // "" for a struct-level attribute error
	Message string
}

func (e *AttributeError) Error() string {
	if e.Field != "" {
		return e.File + ": " + e.Struct + "." + e.Field + ": " + e.Message
	}
	return e.File + ": " + e.Struct + ": " + e.Message
}
