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

// Command esgen reads an Elasticsearch REST API spec directory and
// generates one Go package per endpoint under the configured output
// directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/elastic-go/estc/internal/codegen"
	"github.com/elastic-go/estc/internal/config"
	"github.com/elastic-go/estc/internal/paramset"
	"github.com/elastic-go/estc/internal/spec"
)

var (
	configPath = flag.String("config", "esgen.toml", "path to the generator's TOML config file")
	specDir    = flag.String("spec-dir", "", "override the spec directory from the config file")
	outDir     = flag.String("out", "", "override the output directory from the config file")
	verbose    = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *specDir != "" {
		cfg.General.SpecDir = *specDir
	}
	if *outDir != "" {
		cfg.General.OutputDir = *outDir
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	slog.Info("generation completed successfully")
}

func run(cfg *config.Config) error {
	sp, err := spec.Load(cfg.General.SpecDir)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	files, err := generateAll(sp)
	if err != nil {
		return err
	}

	for _, f := range files {
		dest := filepath.Join(cfg.General.OutputDir, f.Path)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", dest, err)
		}
		if err := os.WriteFile(dest, f.Contents, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		slog.Debug("wrote generated file", "path", dest)
	}
	slog.Info("generated endpoint packages", "count", len(sp.Endpoints), "files", len(files))
	return nil
}

// generateAll runs C2 (paramset.Synthesize) and C3/C4 (codegen) over every
// endpoint in sp, collecting every error rather than stopping at the first
// one, the way spec.Load itself joins per-file errors.
func generateAll(sp *spec.Spec) ([]*codegen.GeneratedFile, error) {
	var files []*codegen.GeneratedFile
	var errs []error
	for _, e := range sp.Endpoints {
		union, err := paramset.Synthesize(e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		data, err := codegen.BuildEndpointData(e, union)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		file, err := codegen.GenerateRequest(data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, file)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return files, nil
}
