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

// Package esparams holds the closed set of typed string wrappers that
// generated endpoint constructors accept for URL parts. Each wrapper is a
// distinct Go type over string, so a value typed Index cannot be passed
// where a Type is expected even though both are "just strings" underneath.
//
// Go strings are immutable and share their backing array on assignment or
// slicing, so there is no borrowed-vs-owned distinction to encode the way
// the original Rust client does with a lifetime-parameterized Cow: a plain
// named string type already gets the zero-copy property these wrappers are
// for. See DESIGN.md for this Open-Question resolution.
package esparams

// Index names one or more indices, comma-separated.
type Index string

// Type names one or more document types, comma-separated.
type Type string

// Id names a single document id.
type Id string

// Name is a generic resource name (used by e.g. stored scripts, templates).
type Name string

// Alias names one or more index aliases, comma-separated.
type Alias string

// Repository names a snapshot repository.
type Repository string

// Snapshot names a snapshot within a repository.
type Snapshot string

// Lang names a scripting language.
type Lang string

// Metric names one or more stats/metric families, comma-separated.
type Metric string

// IndexMetric names one or more per-index metric families, comma-separated.
type IndexMetric string

// NodeId names one or more cluster nodes, comma-separated.
type NodeId string

// Fields names one or more document fields, comma-separated.
type Fields string

// ScrollId is an opaque scroll cursor handed back by a previous search.
type ScrollId string

// ThreadPoolPatterns names one or more thread pool name patterns, comma-separated.
type ThreadPoolPatterns string

// Target names one or more remote-cluster targets, comma-separated.
type Target string

// NewIndex names an index that does not yet exist (e.g. the destination of
// a reindex or shrink operation).
type NewIndex string

// Feature names a named cluster feature (used by the reset-features API family).
type Feature string

// TaskId identifies a single asynchronous task.
type TaskId string
