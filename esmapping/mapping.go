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

// Package esmapping serializes esfield.Mapping values and whole documents
// into the JSON shapes Elasticsearch's put-mapping API expects.
package esmapping

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/elastic-go/estc/esfield"
)

// Property is one named field of a document, in declaration order. It is
// esfield.Property under another name: esfield owns the shape so it can be
// referenced from FieldType.AsObjectField without importing this package.
type Property = esfield.Property

// PropertiesMapping is implemented by generated document types: it lists
// their fields in declaration order, the ordering Elasticsearch mapping
// JSON must preserve. It is esfield.FieldSerializer under the name this
// package's callers expect.
type PropertiesMapping = esfield.FieldSerializer

// orderedObject marshals as a JSON object whose keys appear in the order
// given, instead of encoding/json's map-marshaling order (sorted keys) —
// the small amount of ordered-map plumbing this package needs, hand-rolled
// because the one pack dependency that ships an ordered map
// (pb33f/libopenapi, via its yaml/jsonpath machinery) has no other use in
// this codebase and would be wired in only for this, see DESIGN.md.
type orderedObject struct {
	keys   []string
	values []any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf []byte
	buf = append(buf, '{')
	for i, k := range o.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, fmt.Errorf("marshaling value for key %q: %w", k, err)
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, vb...)
	}
	buf = append(buf, '}')
	return buf, nil
}

func (o *orderedObject) add(key string, value any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

// Raw is an escape hatch for field shapes the static FieldType algebra does
// not model (geo-shapes with exotic options, percolator fields): it carries
// a hand-authored mapping JSON fragment verbatim, bypassing Category/Options
// entirely. Opt in per field; it does not weaken the static path for every
// other field, which still goes through esfield.FieldType.
type Raw json.RawMessage

func (r Raw) Category() string      { return "" }
func (r Raw) Options() map[string]any { return nil }

// FieldJSON renders m's field-position mapping body: {"type":<category>,
// <options>...}. A Mapping whose category is "object" or "nested" renders
// its properties recursively when it also implements PropertiesMapping
// (the nested-object rule, spec.md §4.5): esfield.FieldType.AsObjectField
// is how a data type supplies that PropertiesMapping view. A Raw mapping is
// emitted verbatim, bypassing both rules.
func FieldJSON(m esfield.Mapping) ([]byte, error) {
	if raw, ok := m.(Raw); ok {
		if len(raw) == 0 {
			return nil, fmt.Errorf("esmapping.Raw mapping is empty")
		}
		return json.RawMessage(raw), nil
	}

	obj := &orderedObject{}
	obj.add("type", m.Category())

	if props, ok := m.(PropertiesMapping); ok && (m.Category() == "object" || m.Category() == "nested") {
		propsObj, err := propertiesObject(props)
		if err != nil {
			return nil, err
		}
		obj.add("properties", propsObj)
		return json.Marshal(obj)
	}

	options := m.Options()
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		obj.add(k, options[k])
	}
	return json.Marshal(obj)
}

// propertiesObject builds the {"field": {...}, ...} body shared by both
// FieldJSON's nested-object branch and IndexDocumentMapping's top level.
func propertiesObject(props PropertiesMapping) (*orderedObject, error) {
	obj := &orderedObject{}
	for _, p := range props.Properties() {
		fieldJSON, err := FieldJSON(p.Mapping)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", p.Name, err)
		}
		var raw json.RawMessage = fieldJSON
		obj.add(p.Name, raw)
	}
	return obj, nil
}

// IndexDocumentMapping renders d's top-level put-mapping body:
// {"properties":{...}} — no "type" key at the document root, per spec.md
// §3's invariant that only field-position mappings carry one.
func IndexDocumentMapping(d PropertiesMapping) (json.RawMessage, error) {
	propsObj, err := propertiesObject(d)
	if err != nil {
		return nil, err
	}
	obj := &orderedObject{}
	obj.add("properties", propsObj)
	return json.Marshal(obj)
}
