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

package docgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.go")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestGenerateNestedDocument mirrors scenario S3: a record with a date
// field and a nested document field.
func TestGenerateNestedDocument(t *testing.T) {
	src := `package sample

// elastic:document
type Inner struct {
	Field int ` + "`" + `json:"field" elastic:"type=integer"` + "`" + `
}

// elastic:document
type Outer struct {
	Field1 int64     ` + "`" + `json:"field1" elastic:"type=date,date_format=epoch_millis"` + "`" + `
	Field2 Inner      ` + "`" + `json:"field2"` + "`" + `
}
`
	path := writeSource(t, src)
	out, err := Generate(path)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"type OuterMapping struct{}",
		"type OuterNested struct",
		`Name: "field1", Mapping: esfield.NewDateMapping(esdate.EpochMillis{})`,
		`Name: "field2", Mapping: InnerNested{}`,
		"func (d Outer) Index() string",
		`return "outer"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated source missing %q\n---\n%s", want, got)
		}
	}
}

// TestGenerateStructLevelAttributes mirrors scenario S4: static index/type
// overrides plus a struct-level id expression.
func TestGenerateStructLevelAttributes(t *testing.T) {
	src := `package sample

// elastic:document index=renamed_index ty=renamed_ty id.expr=` + "`" + `strconv.Itoa(self.Field)` + "`" + `
type Record struct {
	Field int ` + "`" + `json:"field" elastic:"type=integer"` + "`" + `
}
`
	path := writeSource(t, src)
	out, err := Generate(path)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		`return "renamed_index"`,
		`return "renamed_ty"`,
		"return strconv.Itoa(d.Field), true",
		"func (d Record) StaticIndex() (string, bool)",
		`"strconv"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated source missing %q\n---\n%s", want, got)
		}
	}
}

func TestGenerateFieldLevelID(t *testing.T) {
	src := `package sample

// elastic:document
type Record struct {
	ID   string ` + "`" + `json:"id" elastic:"id"` + "`" + `
	Name string ` + "`" + `json:"name"` + "`" + `
}
`
	path := writeSource(t, src)
	out, err := Generate(path)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "return fmt.Sprint(d.ID), true") {
		t.Errorf("generated source missing field-based id body\n---\n%s", got)
	}
	if !strings.Contains(got, `"fmt"`) {
		t.Errorf("generated source missing fmt import\n---\n%s", got)
	}
}

func TestGenerateSkipsHiddenAndDashedFields(t *testing.T) {
	src := `package sample

// elastic:document
type Record struct {
	Name     string ` + "`" + `json:"name"` + "`" + `
	Internal string ` + "`" + `json:"-"` + "`" + `
	Hidden   string ` + "`" + `json:"hidden" elastic:"-"` + "`" + `
}
`
	path := writeSource(t, src)
	out, err := Generate(path)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := string(out)
	if strings.Contains(got, "Internal") || strings.Contains(got, `"hidden"`) {
		t.Errorf("generated source should omit skipped fields\n---\n%s", got)
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	src := `package sample

// elastic:document
type Record struct {
	Weird complex128 ` + "`" + `json:"weird"` + "`" + `
}
`
	path := writeSource(t, src)
	if _, err := Generate(path); err == nil {
		t.Fatal("expected an error for a field with no default mapping")
	}
}

func TestGenerateNoAnnotatedStructsReturnsNil(t *testing.T) {
	path := writeSource(t, "package sample\n\ntype Plain struct{}\n")
	out, err := Generate(path)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil output for a file with no elastic:document structs, got:\n%s", out)
	}
}
