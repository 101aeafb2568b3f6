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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elastic-go/estc/internal/spec"
)

func searchEndpoint() *spec.Endpoint {
	return &spec.Endpoint{
		Name: "search",
		URL: spec.URL{
			Path:  "/_search",
			Paths: []string{"/_search", "/{index}/_search", "/{index}/{type}/_search"},
		},
	}
}

func TestSynthesizeSearch(t *testing.T) {
	got, err := Synthesize(searchEndpoint())
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	want := &Union{
		Name: "SearchUrlParams",
		Variants: []Variant{
			{Name: "None", Params: nil, Paths: []string{"/_search"}},
			{Name: "Index", Params: []Param{{Name: "index", Wrapper: "Index"}}, Paths: []string{"/{index}/_search"}},
			{
				Name:   "IndexType",
				Params: []Param{{Name: "index", Wrapper: "Index"}, {Name: "type", Wrapper: "Type"}},
				Paths:  []string{"/{index}/{type}/_search"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Synthesize mismatch (-want +got):\n%s", diff)
	}
}

func TestSynthesizePing(t *testing.T) {
	e := &spec.Endpoint{Name: "ping", URL: spec.URL{Path: "/", Paths: []string{"/"}}}
	got, err := Synthesize(e)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(got.Variants) != 1 || got.Variants[0].Name != "None" {
		t.Fatalf("expected a single None variant, got %+v", got.Variants)
	}
}

// TestSynthesizeCollapsesIdenticalShape checks the collapse rule: two paths
// that render the exact same URL shape become one variant that keeps both
// source paths.
func TestSynthesizeCollapsesIdenticalShape(t *testing.T) {
	e := &spec.Endpoint{
		Name: "indices.put_mapping",
		URL: spec.URL{
			Path:  "/{index}/_mapping",
			Paths: []string{"/{index}/_mapping", "/{index}/_mapping"},
		},
	}
	got, err := Synthesize(e)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(got.Variants) != 1 {
		t.Fatalf("expected collapse to 1 variant, got %d", len(got.Variants))
	}
	if len(got.Variants[0].Paths) != 2 {
		t.Fatalf("expected both source paths retained, got %v", got.Variants[0].Paths)
	}
}

func TestSynthesizeErrorsOnDifferentShapeCollision(t *testing.T) {
	e := &spec.Endpoint{
		Name: "indices.put_mapping",
		URL: spec.URL{
			Path: "/{index}/_mapping",
			Paths: []string{
				"/{index}/_mapping",
				"/{index}_mapping", // same placeholder (index), different literal text => different shape
			},
		},
	}
	_, err := Synthesize(e)
	if err == nil {
		t.Fatal("expected a CollisionError")
	}
	var collision *CollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected *CollisionError, got %T: %v", err, err)
	}
}

func TestWrapperForUnknownPart(t *testing.T) {
	e := &spec.Endpoint{
		Name: "weird",
		URL:  spec.URL{Path: "/{bogus}", Paths: []string{"/{bogus}"}},
	}
	if _, err := Synthesize(e); err == nil {
		t.Fatal("expected an error for an unregistered placeholder name")
	}
}
