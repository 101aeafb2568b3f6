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
	"strconv"
)

// builtinDateFormats maps a "format=" option naming one of esdate's
// zero-size marker formats to the Go expression constructing it.
var builtinDateFormats = map[string]string{
	"basic_date_time":           "esdate.BasicDateTime{}",
	"epoch_millis":              "esdate.EpochMillis{}",
	"strict_date_optional_time": "esdate.StrictDateOptionalTime{}",
}

// typeName returns the field type's base identifier, unwrapping pointers
// and slices: "string", "int", "time.Time", "Address", and so on.
func typeName(expr ast.Expr) (string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, nil
	case *ast.StarExpr:
		return typeName(t.X)
	case *ast.ArrayType:
		return typeName(t.Elt)
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return "", fmt.Errorf("unsupported qualified type %v", t)
		}
		return pkg.Name + "." + t.Sel.Name, nil
	default:
		return "", fmt.Errorf("unsupported field type %T", expr)
	}
}

// resolveMapping builds the Go expression that constructs f's
// esfield.Mapping value. docNames is the set of other "elastic:document"
// struct names seen in the same file, for recognizing a nested-document
// field (spec.md §4.5's nested-object rule).
func resolveMapping(f FieldSpec, docNames map[string]bool) (string, error) {
	base, err := typeName(f.GoType)
	if err != nil {
		return "", fmt.Errorf("field %s: %w", f.GoName, err)
	}

	category := f.Override
	if category == "" {
		switch base {
		case "string":
			category = "text"
		case "int", "int64", "uint", "uint64":
			category = "long"
		case "int8", "int16", "int32", "uint8", "uint16", "uint32":
			category = "integer"
		case "float32":
			category = "float"
		case "float64":
			category = "double"
		case "bool":
			category = "boolean"
		case "time.Time":
			category = "date"
		default:
			if docNames[base] {
				return base + "Nested{}", nil
			}
			return "", fmt.Errorf("field %s: no default mapping for type %q, set an elastic:\"type=...\" override", f.GoName, base)
		}
	} else if docNames[base] && category != "nested" {
		return "", fmt.Errorf("field %s: type %q is a nested document; elastic:\"type=...\" must be \"nested\" or omitted", f.GoName, base)
	}

	switch category {
	case "nested":
		if !docNames[base] {
			return "", fmt.Errorf("field %s: elastic:\"type=nested\" requires %q to be an elastic:document struct", f.GoName, base)
		}
		return base + "Nested{}", nil
	case "text":
		expr := "&esfield.TextMapping{}"
		if v, ok := f.Options["analyzer"]; ok {
			expr = fmt.Sprintf("(%s).WithAnalyzer(%s)", expr, strconv.Quote(v))
		}
		if v, ok := f.Options["fielddata"]; ok {
			expr = fmt.Sprintf("(%s).WithFielddata(%s)", expr, v)
		}
		return expr, nil
	case "keyword":
		expr := "&esfield.KeywordMapping{}"
		if v, ok := f.Options["ignore_above"]; ok {
			expr = fmt.Sprintf("(%s).WithIgnoreAbove(%s)", expr, v)
		}
		if v, ok := f.Options["normalizer"]; ok {
			expr = fmt.Sprintf("(%s).WithNormalizer(%s)", expr, strconv.Quote(v))
		}
		return expr, nil
	case "boolean":
		return "&esfield.BooleanMapping{}", nil
	case "geo_point":
		expr := "&esfield.GeoPointMapping{}"
		if v, ok := f.Options["ignore_z_value"]; ok {
			expr = fmt.Sprintf("(%s).WithIgnoreZValue(%s)", expr, v)
		}
		return expr, nil
	case "object":
		return "&esfield.ObjectMapping{}", nil
	case "integer", "long", "short", "byte", "double", "float", "half_float", "scaled_float":
		expr := fmt.Sprintf("esfield.NewNumberMapping(%s)", strconv.Quote(category))
		if v, ok := f.Options["coerce"]; ok {
			expr = fmt.Sprintf("(%s).WithCoerce(%s)", expr, v)
		}
		if v, ok := f.Options["index"]; ok {
			expr = fmt.Sprintf("(%s).WithIndex(%s)", expr, v)
		}
		return expr, nil
	case "date":
		formatExpr, err := resolveDateFormat(f)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("esfield.NewDateMapping(%s)", formatExpr), nil
	default:
		return "", fmt.Errorf("field %s: unknown elastic field type %q", f.GoName, category)
	}
}

func resolveDateFormat(f FieldSpec) (string, error) {
	pattern, hasPattern := f.Options["date_format"]
	if !hasPattern {
		return "", fmt.Errorf("field %s: date fields require elastic:\"date_format=...\"", f.GoName)
	}
	if builtin, ok := builtinDateFormats[pattern]; ok {
		return builtin, nil
	}
	name := pattern
	if n, ok := f.Options["date_format_name"]; ok {
		name = n
	}
	return fmt.Sprintf("esdate.MustNewPatternFormat(%s, %s)", strconv.Quote(name), strconv.Quote(pattern)), nil
}
