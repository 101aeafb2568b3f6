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

package esfield

import "github.com/elastic-go/estc/esdate"

// NumberMapping is the mapping category for Elasticsearch's numeric field
// types (long, integer, short, byte, double, float, half_float, scaled_float).
type NumberMapping struct {
	baseMapping
	numberType string
}

// NewNumberMapping declares a numeric field of the given Elasticsearch
// numeric type name, e.g. "long" or "double".
func NewNumberMapping(numberType string) *NumberMapping {
	return &NumberMapping{numberType: numberType}
}

func (m *NumberMapping) Category() string { return m.numberType }

// WithCoerce sets the "coerce" mapping option.
func (m *NumberMapping) WithCoerce(coerce bool) *NumberMapping {
	m.set("coerce", coerce)
	return m
}

// WithIndex sets the "index" mapping option.
func (m *NumberMapping) WithIndex(index bool) *NumberMapping {
	m.set("index", index)
	return m
}

// TextMapping is the mapping category for full-text "text" fields.
type TextMapping struct {
	baseMapping
}

func (m *TextMapping) Category() string { return "text" }

// WithAnalyzer sets the "analyzer" mapping option.
func (m *TextMapping) WithAnalyzer(analyzer string) *TextMapping {
	m.set("analyzer", analyzer)
	return m
}

// WithFielddata sets the "fielddata" mapping option.
func (m *TextMapping) WithFielddata(enabled bool) *TextMapping {
	m.set("fielddata", enabled)
	return m
}

// KeywordMapping is the mapping category for exact-match "keyword" fields.
type KeywordMapping struct {
	baseMapping
}

func (m *KeywordMapping) Category() string { return "keyword" }

// WithIgnoreAbove sets the "ignore_above" mapping option.
func (m *KeywordMapping) WithIgnoreAbove(n int) *KeywordMapping {
	m.set("ignore_above", n)
	return m
}

// WithNormalizer sets the "normalizer" mapping option.
func (m *KeywordMapping) WithNormalizer(normalizer string) *KeywordMapping {
	m.set("normalizer", normalizer)
	return m
}

// BooleanMapping is the mapping category for "boolean" fields.
type BooleanMapping struct {
	baseMapping
}

func (m *BooleanMapping) Category() string { return "boolean" }

// GeoPointMapping is the mapping category for "geo_point" fields.
type GeoPointMapping struct {
	baseMapping
}

func (m *GeoPointMapping) Category() string { return "geo_point" }

// WithIgnoreZValue sets the "ignore_z_value" mapping option.
func (m *GeoPointMapping) WithIgnoreZValue(ignore bool) *GeoPointMapping {
	m.set("ignore_z_value", ignore)
	return m
}

// ObjectMapping is the mapping category for plain "object" fields (no
// independent indexing of nested array entries, unlike NestedMapping).
type ObjectMapping struct {
	baseMapping
}

func (m *ObjectMapping) Category() string { return "object" }

// NestedMapping is the mapping category for "nested" fields: each array
// entry indexed as its own hidden document.
type NestedMapping struct {
	baseMapping
}

func (m *NestedMapping) Category() string { return "nested" }

// DateMapping is the mapping category for "date" fields, parameterized by
// the esdate.Format governing both the field's "format" mapping option and
// the static Go type of date-math expressions built against it.
type DateMapping[F esdate.Format] struct {
	baseMapping
}

// NewDateMapping declares a date field whose "format" option is the name of
// format (e.g. "strict_date_optional_time"). format is taken as an
// explicit argument, not synthesized from F's zero value, so a runtime-
// configured Format like PatternFormat works the same as a zero-size
// marker type like BasicDateTime.
func NewDateMapping[F esdate.Format](format F) *DateMapping[F] {
	m := &DateMapping[F]{}
	m.set("format", format.Name())
	return m
}

func (m *DateMapping[F]) Category() string { return "date" }
