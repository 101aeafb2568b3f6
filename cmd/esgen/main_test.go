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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elastic-go/estc/internal/config"
	"github.com/elastic-go/estc/internal/spec"
)

func pingEndpoint() *spec.Endpoint {
	return &spec.Endpoint{
		Name:    "ping",
		Methods: []spec.Method{spec.HEAD},
		URL:     spec.URL{Path: "/", Paths: []string{"/"}},
	}
}

func TestGenerateAllWritesOneFilePerEndpoint(t *testing.T) {
	sp := &spec.Spec{Endpoints: []*spec.Endpoint{pingEndpoint()}}
	files, err := generateAll(sp)
	if err != nil {
		t.Fatalf("generateAll: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Path != filepath.Join("ping", "request.go") {
		t.Errorf("got path %q", files[0].Path)
	}
}

func TestGenerateAllJoinsErrorsAcrossEndpoints(t *testing.T) {
	first := &spec.Endpoint{Name: "broken_one", Methods: []spec.Method{spec.GET}, URL: spec.URL{Path: "/broken"}}
	second := &spec.Endpoint{Name: "broken_two", Methods: []spec.Method{spec.GET}, URL: spec.URL{Path: "/broken"}}
	sp := &spec.Spec{Endpoints: []*spec.Endpoint{first, second}}
	_, err := generateAll(sp)
	if err == nil {
		t.Fatal("expected an error for an endpoint with no paths")
	}
	for _, name := range []string{"broken_one", "broken_two"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("joined error does not mention endpoint %q: %v", name, err)
		}
	}
}

func TestRunWritesFilesUnderConfiguredOutputDir(t *testing.T) {
	specDir := t.TempDir()
	outDir := t.TempDir()

	pingJSON := `{"ping":{"documentation":"Pings.","methods":["HEAD"],"url":{"path":"/","paths":["/"]}}}`
	if err := os.WriteFile(filepath.Join(specDir, "ping.json"), []byte(pingJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.General.SpecDir = specDir
	cfg.General.OutputDir = outDir

	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "ping", "request.go"))
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("generated file is empty")
	}
}
