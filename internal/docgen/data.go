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
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// asReceiver rewrites an attribute expression's "self" references (the
// vocabulary spec.md's derive attributes use) to "d", the receiver name
// every generated DocumentType method uses.
func asReceiver(expr string) string {
	return strings.ReplaceAll(expr, "self.", "d.")
}

type propertyData struct {
	ESNameLiteral string
	MappingExpr   string
}

// documentData feeds the document.go.mustache template; every Go-source
// fragment (mapping expressions, id/index/type bodies) is assembled here so
// the template itself only does straightforward section iteration, the
// same split internal/codegen's data.go uses.
type documentData struct {
	Name        string
	MappingName string
	NestedName  string
	Properties  []propertyData

	HasIndexLiteral bool
	IndexLiteral    string
	HasIndexExpr    bool
	IndexExpr       string

	HasTypeLiteral bool
	TypeLiteral    string
	HasTypeExpr    bool
	TypeExpr       string

	HasID   bool
	IDBody  string
}

// BuildDocumentData resolves spec's field mappings against docNames (every
// "elastic:document" struct name seen in the same file, for nested-field
// detection) and assembles the template data for it.
func BuildDocumentData(spec *DocumentSpec, docNames map[string]bool) (*documentData, error) {
	data := &documentData{
		Name:        spec.Name,
		MappingName: spec.MappingName,
		NestedName:  spec.Name + "Nested",
	}

	var idField *FieldSpec
	for i, f := range spec.Fields {
		mappingExpr, err := resolveMapping(f, docNames)
		if err != nil {
			return nil, err
		}
		data.Properties = append(data.Properties, propertyData{
			ESNameLiteral: strconv.Quote(f.ESName),
			MappingExpr:   mappingExpr,
		})
		if f.IsID {
			if idField != nil {
				return nil, fmt.Errorf("struct %s: more than one field marked as id (%s, %s)", spec.Name, idField.GoName, f.GoName)
			}
			idField = &spec.Fields[i]
		}
	}

	switch {
	case spec.IndexExpr != "":
		data.HasIndexExpr = true
		data.IndexExpr = asReceiver(spec.IndexExpr)
	case spec.IndexLiteral != "":
		data.HasIndexLiteral = true
		data.IndexLiteral = strconv.Quote(spec.IndexLiteral)
	default:
		data.HasIndexLiteral = true
		data.IndexLiteral = strconv.Quote(strcase.ToSnake(spec.Name))
	}

	switch {
	case spec.TypeExpr != "":
		data.HasTypeExpr = true
		data.TypeExpr = asReceiver(spec.TypeExpr)
	case spec.TypeLiteral != "":
		data.HasTypeLiteral = true
		data.TypeLiteral = strconv.Quote(spec.TypeLiteral)
	default:
		data.HasTypeLiteral = true
		data.TypeLiteral = strconv.Quote("_doc")
	}

	switch {
	case spec.IDExpr != "":
		data.HasID = true
		data.IDBody = fmt.Sprintf("\treturn %s, true", asReceiver(spec.IDExpr))
	case idField != nil:
		data.HasID = true
		data.IDBody = fmt.Sprintf("\treturn fmt.Sprint(d.%s), true", idField.GoName)
	default:
		data.HasID = false
	}

	return data, nil
}
