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
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/elastic-go/estc/internal/paramset"
	"github.com/elastic-go/estc/internal/spec"
)

// fieldData is one field of a generated variant struct.
type fieldData struct {
	GoName  string
	Wrapper string
}

// variantData is one arm of the generated tagged union, realized as its own
// struct type implementing the union interface (spec.md §4's "match over
// self" becomes, in Go, one Url() method per concrete variant type — static
// dispatch through an interface method set rather than an explicit switch).
type variantData struct {
	StructName string // UnionName + Variant.Name, e.g. SearchUrlParamsIndexType
	Fields     []fieldData
	URLBody    string
	Last       bool // true for mustache's trailing-comma-free rendering
}

// ctorData is one generated constructor function.
type ctorData struct {
	FuncName       string // e.g. ForIndexTypeSearchRequest
	HasTypeParams  bool
	TypeParams     string // e.g. "I esparams.IndexLike, T esparams.TypeLike, B any" (may omit B)
	Args           string // e.g. "index I, type_ T, body B"
	VariantExpr    string // e.g. "SearchUrlParamsIndexType{Index: esparams.IndexFrom(index), Type: esparams.TypeFrom(type_)}"
	HasBody        bool
	Last           bool
}

// EndpointData is everything the request.go.mustache template needs to
// render one endpoint's generated file.
type EndpointData struct {
	PackageName    string
	EndpointName   string
	GoName         string
	Documentation  []string
	UnionName      string
	RequestName    string
	HasBody        bool
	HasQueryParams bool
	UsesBuilder    bool
	Variants       []variantData
	Constructors   []ctorData
}

// BuildEndpointData assembles an EndpointData from e and its already
// synthesized URL-parameter union (internal/paramset.Synthesize's output).
func BuildEndpointData(e *spec.Endpoint, union *paramset.Union) (*EndpointData, error) {
	goName := strcase.ToCamel(strings.ReplaceAll(e.Name, ".", "_"))
	data := &EndpointData{
		PackageName:    goPackageName(e.Name),
		EndpointName:   e.Name,
		GoName:         goName,
		Documentation:  docComment(e.Documentation),
		UnionName:      union.Name,
		RequestName:    goName + "Request",
		HasBody:        e.HasBody(),
		HasQueryParams: len(e.URL.Params) > 0,
	}

	for i, v := range union.Variants {
		fields := make([]fieldData, 0, len(v.Params))
		fieldMap := map[string]string{}
		for _, p := range v.Params {
			gf := goFieldName(p.Name)
			fields = append(fields, fieldData{GoName: gf, Wrapper: p.Wrapper})
			fieldMap[p.Name] = gf
		}
		if len(fields) > 0 {
			data.UsesBuilder = true
		}
		data.Variants = append(data.Variants, variantData{
			StructName: union.Name + v.Name,
			Fields:     fields,
			URLBody:    buildURLBody(v.Paths[0], fieldMap),
			Last:       i == len(union.Variants)-1,
		})

		ctor, err := buildConstructor(data, v, fields)
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", e.Name, err)
		}
		data.Constructors = append(data.Constructors, ctor)
	}
	if n := len(data.Constructors); n > 0 {
		data.Constructors[n-1].Last = true
	}

	return data, nil
}

func buildConstructor(data *EndpointData, v paramset.Variant, fields []fieldData) (ctorData, error) {
	funcName := "New" + data.RequestName
	if v.Name != "None" {
		funcName = "For" + v.Name + data.RequestName
	}

	typeNames := typeParamNames(v.Params)

	var typeParams []string
	var args []string
	var fieldAssigns []string
	for i, p := range v.Params {
		tn := typeNames[i]
		typeParams = append(typeParams, fmt.Sprintf("%s esparams.%sLike", tn, p.Wrapper))
		argName := goArgName(strcase.ToLowerCamel(p.Name))
		args = append(args, fmt.Sprintf("%s %s", argName, tn))
		fieldAssigns = append(fieldAssigns, fmt.Sprintf("%s: esparams.%sFrom(%s)", fields[i].GoName, p.Wrapper, argName))
	}

	if data.HasBody {
		typeParams = append(typeParams, "B any")
		args = append(args, "body B")
	}

	var variantExpr string
	if len(fieldAssigns) == 0 {
		variantExpr = fmt.Sprintf("%s{}", data.UnionName+v.Name)
	} else {
		variantExpr = fmt.Sprintf("%s{%s}", data.UnionName+v.Name, strings.Join(fieldAssigns, ", "))
	}

	return ctorData{
		FuncName:      funcName,
		HasTypeParams: len(typeParams) > 0,
		TypeParams:    strings.Join(typeParams, ", "),
		Args:          strings.Join(args, ", "),
		VariantExpr:   variantExpr,
		HasBody:       data.HasBody,
	}, nil
}

// typeParamNames derives a short, unique generic type-parameter name per
// placeholder, from the first letter of its wrapper type.
func typeParamNames(params []paramset.Param) []string {
	used := map[string]bool{}
	names := make([]string, len(params))
	for i, p := range params {
		base := strings.ToUpper(p.Wrapper[:1])
		name := base
		n := 2
		for used[name] {
			name = fmt.Sprintf("%s%d", base, n)
			n++
		}
		used[name] = true
		names[i] = name
	}
	return names
}
