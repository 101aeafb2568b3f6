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

import "testing"

type myIndexAlias string

func TestIndexFromAcceptsAnyStringKind(t *testing.T) {
	if got := IndexFrom("logs-2024"); got != Index("logs-2024") {
		t.Fatalf("got %v", got)
	}
	if got := IndexFrom(myIndexAlias("logs-2024")); got != Index("logs-2024") {
		t.Fatalf("got %v", got)
	}
	if got := IndexFrom(Index("logs-2024")); got != Index("logs-2024") {
		t.Fatalf("got %v", got)
	}
}

func TestLen(t *testing.T) {
	if Index("abcd").Len() != 4 {
		t.Fatalf("want 4, got %d", Index("abcd").Len())
	}
}

func TestUrlPathString(t *testing.T) {
	if UrlPath("/_search").String() != "/_search" {
		t.Fatal("UrlPath.String mismatch")
	}
}
