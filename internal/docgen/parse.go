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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// ParseFile parses filename looking for "elastic:document"-annotated
// structs, grounded on the teacher's own codegen-over-source-text idiom:
// internal/parser reads a specification format into a model; this reads Go
// source itself into the same kind of model, via go/parser instead of
// encoding/json.
func ParseFile(filename string) (string, []*DocumentSpec, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	var specs []*DocumentSpec
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, s := range gen.Specs {
			ts, ok := s.(*ast.TypeSpec)
			if !ok {
				continue
			}
			structType, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			doc := docText(gen, ts)
			attrText, found := directiveLine(doc)
			if !found {
				continue
			}
			spec, err := buildSpec(filename, ts.Name.Name, attrText, structType)
			if err != nil {
				return "", nil, err
			}
			specs = append(specs, spec)
		}
	}
	return file.Name.Name, specs, nil
}

// docText prefers the TypeSpec's own doc comment (the shape a grouped
// `type (...)` block uses) and falls back to the enclosing GenDecl's (a
// standalone `type Foo struct{}` attaches its comment there instead).
func docText(gen *ast.GenDecl, ts *ast.TypeSpec) string {
	if ts.Doc != nil {
		return ts.Doc.Text()
	}
	if gen.Doc != nil {
		return gen.Doc.Text()
	}
	return ""
}

func buildSpec(file, name, attrText string, st *ast.StructType) (*DocumentSpec, error) {
	attrs, err := parseDirectiveAttrs(attrText)
	if err != nil {
		return nil, &AttributeError{File: file, Struct: name, Message: err.Error()}
	}

	spec := &DocumentSpec{
		Name:        name,
		MappingName: name + "Mapping",
	}
	if v, ok := attrs["mapping"]; ok {
		spec.MappingName = v
	}
	if v, ok := attrs["index"]; ok {
		spec.IndexLiteral = v
	}
	if v, ok := attrs["index.expr"]; ok {
		spec.IndexExpr = v
	}
	if v, ok := attrs["ty"]; ok {
		spec.TypeLiteral = v
	}
	if v, ok := attrs["ty.expr"]; ok {
		spec.TypeExpr = v
	}
	if v, ok := attrs["id.expr"]; ok {
		spec.IDExpr = v
	}
	if spec.IndexLiteral != "" && spec.IndexExpr != "" {
		return nil, &AttributeError{File: file, Struct: name, Message: "both index= and index.expr= set"}
	}
	if spec.TypeLiteral != "" && spec.TypeExpr != "" {
		return nil, &AttributeError{File: file, Struct: name, Message: "both ty= and ty.expr= set"}
	}
	for _, key := range []string{"index.expr", "ty.expr", "id.expr"} {
		if v, ok := attrs[key]; ok {
			if _, err := parser.ParseExpr(v); err != nil {
				return nil, &AttributeError{File: file, Struct: name, Message: fmt.Sprintf("%s: unparseable expression %q: %v", key, v, err)}
			}
		}
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue // embedded field: not supported, skipped rather than guessed at
		}
		tag := ""
		if field.Tag != nil {
			unquoted, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				unquoted = strings.Trim(field.Tag.Value, "`")
			}
			tag = unquoted
		}
		structTag := reflect.StructTag(tag)

		for _, id := range field.Names {
			if !id.IsExported() {
				continue
			}
			esName := strcase.ToSnake(id.Name)
			if jsonTag, ok := structTag.Lookup("json"); ok {
				jsonName, _, _ := strings.Cut(jsonTag, ",")
				if jsonName == "-" {
					continue
				}
				if jsonName != "" {
					esName = jsonName
				}
			}

			skip, isID, opts, err := parseFieldTag(structTag.Get("elastic"))
			if err != nil {
				return nil, &AttributeError{File: file, Struct: name, Field: id.Name, Message: err.Error()}
			}
			if skip {
				continue
			}
			override := opts["type"]
			delete(opts, "type")

			spec.Fields = append(spec.Fields, FieldSpec{
				GoName:   id.Name,
				ESName:   esName,
				GoType:   field.Type,
				IsID:     isID,
				Override: override,
				Options:  opts,
			})
		}
	}

	return spec, nil
}
