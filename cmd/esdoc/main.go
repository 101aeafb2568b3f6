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

// Command esdoc is the offline half of the DocumentType derive: invoked via
// a //go:generate esdoc directive next to an "elastic:document"-annotated
// struct, it writes a "<file>_esdoc.go" sibling declaring that struct's
// mapping type and DocumentType method set.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/elastic-go/estc/internal/docgen"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: esdoc <file.go> [<file.go> ...]")
	}
	for _, file := range os.Args[1:] {
		if err := generateOne(file); err != nil {
			log.Fatal(err)
		}
	}
}

func generateOne(file string) error {
	contents, err := docgen.Generate(file)
	if err != nil {
		return err
	}
	if contents == nil {
		return nil
	}
	out := outputPath(file)
	if err := os.WriteFile(out, contents, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "esdoc: wrote %s\n", out)
	return nil
}

func outputPath(file string) string {
	dir := filepath.Dir(file)
	base := strings.TrimSuffix(filepath.Base(file), ".go")
	return filepath.Join(dir, base+"_esdoc.go")
}
