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

package spec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitPath(t *testing.T) {
	cases := []struct {
		name string
		path string
		want []Fragment
	}{
		{"param_only", "{index}", []Fragment{placeholder("index")}},
		{
			"param_first",
			"{index}/{type}",
			[]Fragment{placeholder("index"), literal("/"), placeholder("type")},
		},
		{
			"params_and_literals",
			"/{index}/part/{type}",
			[]Fragment{literal("/"), placeholder("index"), literal("/part/"), placeholder("type")},
		},
		{"literal_only", "/part", []Fragment{literal("/part")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitPath(tc.path)
			if diff := cmp.Diff(tc.want, got, cmp.Comparer(fragmentEqual)); diff != "" {
				t.Errorf("SplitPath(%q) mismatch (-want +got):\n%s", tc.path, diff)
			}
		})
	}
}

func fragmentEqual(a, b Fragment) bool {
	if (a.Literal == nil) != (b.Literal == nil) {
		return false
	}
	if (a.Placeholder == nil) != (b.Placeholder == nil) {
		return false
	}
	if a.Literal != nil && *a.Literal != *b.Literal {
		return false
	}
	if a.Placeholder != nil && *a.Placeholder != *b.Placeholder {
		return false
	}
	return true
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("/{index}/part/{type}")
	want := []string{"index", "type"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Placeholders mismatch (-want +got):\n%s", diff)
	}
}

func searchEndpoint() *Endpoint {
	return &Endpoint{
		Name:    "search",
		Methods: []Method{GET, POST},
		URL: URL{
			Path:  "/_search",
			Paths: []string{"/_search", "/{index}/_search", "/{index}/{type}/_search"},
			Parts: map[string]Part{
				"index": {Kind: KindList, Description: "A comma-separated list of index names to search"},
				"type":  {Kind: KindList, Description: "A comma-separated list of document types to search"},
			},
			Params: map[string]Part{
				"analyzer": {Kind: KindString, Description: "The analyzer to use for the query string"},
			},
		},
		Body: &Body{Description: "The search definition using the Query DSL"},
	}
}

func TestHasBody(t *testing.T) {
	e := searchEndpoint()
	if !e.HasBody() {
		t.Fatal("expected HasBody() to be true when Body is set")
	}
	e.Body = nil
	e.Methods = []Method{GET, PUT}
	if !e.HasBody() {
		t.Fatal("expected HasBody() to be true for PUT even without a body descriptor")
	}
	e.Methods = []Method{GET, DELETE}
	if e.HasBody() {
		t.Fatal("expected HasBody() to be false for GET/DELETE without a body descriptor")
	}
}

func TestValidate(t *testing.T) {
	e := searchEndpoint()
	if err := e.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := searchEndpoint()
	bad.URL.Paths = []string{"/{index}/_search"}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error when Path is not a member of Paths")
	}

	missingPart := searchEndpoint()
	delete(missingPart.URL.Parts, "type")
	if err := missingPart.Validate(); err == nil {
		t.Fatal("expected error when a path placeholder has no matching part")
	}
}

func TestNormalizeAddsLeadingSlash(t *testing.T) {
	e := &Endpoint{
		Name:    "ping",
		Methods: []Method{HEAD},
		URL:     URL{Path: "", Paths: []string{"_search"}},
	}
	e.URL.Path = "_search"
	e.Normalize()
	if e.URL.Path != "/_search" {
		t.Fatalf("got path %q, want /_search", e.URL.Path)
	}
	if e.URL.Paths[0] != "/_search" {
		t.Fatalf("got paths[0] %q, want /_search", e.URL.Paths[0])
	}
}
