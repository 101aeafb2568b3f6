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

// UrlPath is the fully-rendered path of a request, produced by a generated
// URL-params union's Url method. It carries no percent-encoding; that is
// left to the transport (outside the core, per spec.md §1).
type UrlPath string

func (u UrlPath) String() string { return string(u) }

// NoBody marks a generated request struct whose endpoint has no request
// body. Endpoints with a body are generic over the caller's own body type
// instead of using this marker.
type NoBody struct{}
