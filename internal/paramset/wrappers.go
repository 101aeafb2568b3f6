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

// Package paramset derives, from an endpoint's set of URL path templates,
// the tagged union of its legal placeholder combinations (spec.md §4.1).
package paramset

import "fmt"

// wrapperByPart maps a URL placeholder's name, as it appears in spec JSON,
// to the esparams wrapper type that represents it. This is the fixed
// name→wrapper table spec.md §3/§4.1 requires; a placeholder not listed
// here is a generator error (spec.md §7).
var wrapperByPart = map[string]string{
	"index":                  "Index",
	"type":                   "Type",
	"id":                     "Id",
	"name":                   "Name",
	"alias":                  "Alias",
	"repository":             "Repository",
	"snapshot":               "Snapshot",
	"lang":                   "Lang",
	"metric":                 "Metric",
	"index_metric":           "IndexMetric",
	"node_id":                "NodeId",
	"fields":                 "Fields",
	"scroll_id":              "ScrollId",
	"thread_pool_patterns":   "ThreadPoolPatterns",
	"target":                 "Target",
	"new_index":              "NewIndex",
	"feature":                "Feature",
	"task_id":                "TaskId",
}

// WrapperFor resolves a placeholder name to its esparams wrapper type name.
func WrapperFor(part string) (string, error) {
	w, ok := wrapperByPart[part]
	if !ok {
		return "", fmt.Errorf("unknown url part %q: no registered esparams wrapper", part)
	}
	return w, nil
}
