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

// Package spec is the in-memory representation of the Elasticsearch REST
// API specification: one Endpoint per named operation, its HTTP methods,
// its URL templates, and the typed parts/params that fill them in.
package spec

import "sort"

// Method is one of the HTTP verbs an Endpoint may be invoked with.
type Method string

const (
	HEAD   Method = "HEAD"
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// PartKind classifies a URL part or query parameter's declared type in the
// specification JSON.
type PartKind string

const (
	KindString  PartKind = "string"
	KindList    PartKind = "list"
	KindEnum    PartKind = "enum"
	KindText    PartKind = "text"
	KindBoolean PartKind = "boolean"
	KindNumber  PartKind = "number"
	KindFloat   PartKind = "float"
	KindInteger PartKind = "integer"
	KindTime    PartKind = "time"
	KindDuration PartKind = "duration"
)

// Part describes a single URL placeholder or query-string parameter.
type Part struct {
	Kind        PartKind `json:"type"`
	Description string   `json:"description"`
	Options     []string `json:"options,omitempty"`
	Default     any      `json:"default,omitempty"`
}

// Body describes the (optional) request body accepted by an Endpoint.
type Body struct {
	Description string `json:"description"`
}

// URL holds an Endpoint's default path, every alternative path, and the
// dictionaries of parts (path placeholders) and params (query parameters).
type URL struct {
	Path   string          `json:"path"`
	Paths  []string        `json:"paths"`
	Parts  map[string]Part `json:"parts,omitempty"`
	Params map[string]Part `json:"params,omitempty"`
}

// Endpoint is one named REST operation, e.g. "indices.exists_alias".
type Endpoint struct {
	Name          string   `json:"-"`
	Documentation string   `json:"documentation"`
	Methods       []Method `json:"methods"`
	URL           URL      `json:"url"`
	Body          *Body    `json:"body,omitempty"`
}

// HasBody implements spec.md's invariant: has_body ⇔ (body present) ∨
// (method ∈ {POST, PUT}).
func (e *Endpoint) HasBody() bool {
	if e.Body != nil {
		return true
	}
	for _, m := range e.Methods {
		if m == POST || m == PUT {
			return true
		}
	}
	return false
}

// Fragment is one element of a decomposed URL path: either a literal string
// or a named placeholder. Exactly one of the two is set.
type Fragment struct {
	Literal     *string
	Placeholder *string
}

// IsPlaceholder reports whether this fragment is a `{name}` placeholder.
func (f Fragment) IsPlaceholder() bool { return f.Placeholder != nil }

// Spec is the full, sorted set of Endpoints ingested from a specification
// directory.
type Spec struct {
	Endpoints []*Endpoint
}

// ByName returns the Endpoint with the given dotted name, or nil.
func (s *Spec) ByName(name string) *Endpoint {
	for _, e := range s.Endpoints {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func sortEndpoints(endpoints []*Endpoint) {
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Name < endpoints[j].Name })
}
