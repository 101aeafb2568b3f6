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

package esmapping

import (
	"testing"

	"github.com/elastic-go/estc/esfield"
)

// addressDoc is a small hand-written stand-in for a C8-generated document
// type, exercising the nested-object rule.
type addressDoc struct{}

func (addressDoc) Properties() []Property {
	return []Property{
		{Name: "city", Mapping: &esfield.KeywordMapping{}},
	}
}

type personDoc struct{}

func (personDoc) Properties() []Property {
	return []Property{
		{Name: "name", Mapping: (&esfield.TextMapping{}).WithAnalyzer("standard")},
		{Name: "age", Mapping: esfield.NewNumberMapping("integer")},
		{Name: "address", Mapping: nestedAddressMapping{}},
	}
}

// nestedAddressMapping satisfies esfield.Mapping (category "nested") and
// esmapping.PropertiesMapping (via addressDoc's field list), the shape
// C8-generated nested-object fields have.
type nestedAddressMapping struct {
	addressDoc
}

func (nestedAddressMapping) Category() string        { return "nested" }
func (nestedAddressMapping) Options() map[string]any { return nil }

func TestIndexDocumentMappingOrderAndShape(t *testing.T) {
	raw, err := IndexDocumentMapping(personDoc{})
	if err != nil {
		t.Fatalf("IndexDocumentMapping: %v", err)
	}
	got := string(raw)
	want := `{"properties":{"name":{"type":"text","analyzer":"standard"},"age":{"type":"integer"},"address":{"type":"nested","properties":{"city":{"type":"keyword"}}}}}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestFieldJSONLeafMapping(t *testing.T) {
	raw, err := FieldJSON(esfield.NewNumberMapping("long").WithIndex(false))
	if err != nil {
		t.Fatalf("FieldJSON: %v", err)
	}
	if got, want := string(raw), `{"type":"long","index":false}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFieldJSONRawMappingEmittedVerbatim(t *testing.T) {
	fragment := Raw(`{"type":"geo_shape","orientation":"clockwise"}`)
	raw, err := FieldJSON(fragment)
	if err != nil {
		t.Fatalf("FieldJSON: %v", err)
	}
	if got, want := string(raw), `{"type":"geo_shape","orientation":"clockwise"}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFieldJSONRawMappingRejectsEmpty(t *testing.T) {
	if _, err := FieldJSON(Raw(nil)); err == nil {
		t.Fatal("expected an error for an empty Raw mapping")
	}
}
