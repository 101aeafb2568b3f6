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

package esparams

func (v Index) String() string              { return string(v) }
func (v Index) Len() int                    { return len(v) }
func (v Type) String() string               { return string(v) }
func (v Type) Len() int                     { return len(v) }
func (v Id) String() string                 { return string(v) }
func (v Id) Len() int                       { return len(v) }
func (v Name) String() string               { return string(v) }
func (v Name) Len() int                     { return len(v) }
func (v Alias) String() string              { return string(v) }
func (v Alias) Len() int                    { return len(v) }
func (v Repository) String() string         { return string(v) }
func (v Repository) Len() int               { return len(v) }
func (v Snapshot) String() string           { return string(v) }
func (v Snapshot) Len() int                 { return len(v) }
func (v Lang) String() string               { return string(v) }
func (v Lang) Len() int                     { return len(v) }
func (v Metric) String() string             { return string(v) }
func (v Metric) Len() int                   { return len(v) }
func (v IndexMetric) String() string        { return string(v) }
func (v IndexMetric) Len() int              { return len(v) }
func (v NodeId) String() string             { return string(v) }
func (v NodeId) Len() int                   { return len(v) }
func (v Fields) String() string             { return string(v) }
func (v Fields) Len() int                   { return len(v) }
func (v ScrollId) String() string           { return string(v) }
func (v ScrollId) Len() int                 { return len(v) }
func (v ThreadPoolPatterns) String() string { return string(v) }
func (v ThreadPoolPatterns) Len() int       { return len(v) }
func (v Target) String() string             { return string(v) }
func (v Target) Len() int                   { return len(v) }
func (v NewIndex) String() string           { return string(v) }
func (v NewIndex) Len() int                 { return len(v) }
func (v Feature) String() string            { return string(v) }
func (v Feature) Len() int                  { return len(v) }
func (v TaskId) String() string             { return string(v) }
func (v TaskId) Len() int                   { return len(v) }

// Like constraints accepted by generated constructors: any string-kind type
// convertible into the corresponding wrapper, including the wrapper itself,
// a plain string literal, or a caller's own named string type. This is the
// Go realization of the original client's `IIndex: Into<Index<'a>>`
// constructor bound.
type (
	IndexLike              interface{ ~string }
	TypeLike                interface{ ~string }
	IdLike                  interface{ ~string }
	NameLike                interface{ ~string }
	AliasLike               interface{ ~string }
	RepositoryLike          interface{ ~string }
	SnapshotLike            interface{ ~string }
	LangLike                interface{ ~string }
	MetricLike              interface{ ~string }
	IndexMetricLike         interface{ ~string }
	NodeIdLike              interface{ ~string }
	FieldsLike              interface{ ~string }
	ScrollIdLike            interface{ ~string }
	ThreadPoolPatternsLike  interface{ ~string }
	TargetLike              interface{ ~string }
	NewIndexLike            interface{ ~string }
	FeatureLike             interface{ ~string }
	TaskIdLike              interface{ ~string }
)

// Each wrapper's "...From" constructor accepts any of its "...Like" types.
// These are plain conversions (construction cannot fail, per spec.md §4.3).
func IndexFrom[S IndexLike](s S) Index                   { return Index(s) }
func TypeFrom[S TypeLike](s S) Type                      { return Type(s) }
func IdFrom[S IdLike](s S) Id                            { return Id(s) }
func NameFrom[S NameLike](s S) Name                      { return Name(s) }
func AliasFrom[S AliasLike](s S) Alias                   { return Alias(s) }
func RepositoryFrom[S RepositoryLike](s S) Repository    { return Repository(s) }
func SnapshotFrom[S SnapshotLike](s S) Snapshot          { return Snapshot(s) }
func LangFrom[S LangLike](s S) Lang                      { return Lang(s) }
func MetricFrom[S MetricLike](s S) Metric                { return Metric(s) }
func IndexMetricFrom[S IndexMetricLike](s S) IndexMetric { return IndexMetric(s) }
func NodeIdFrom[S NodeIdLike](s S) NodeId                { return NodeId(s) }
func FieldsFrom[S FieldsLike](s S) Fields                { return Fields(s) }
func ScrollIdFrom[S ScrollIdLike](s S) ScrollId          { return ScrollId(s) }
func ThreadPoolPatternsFrom[S ThreadPoolPatternsLike](s S) ThreadPoolPatterns {
	return ThreadPoolPatterns(s)
}
func TargetFrom[S TargetLike](s S) Target       { return Target(s) }
func NewIndexFrom[S NewIndexLike](s S) NewIndex { return NewIndex(s) }
func FeatureFrom[S FeatureLike](s S) Feature    { return Feature(s) }
func TaskIdFrom[S TaskIdLike](s S) TaskId       { return TaskId(s) }
