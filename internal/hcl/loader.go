package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/landinggo/internal/config"
	"github.com/vk/landinggo/internal/ctxlog"
	"github.com/vk/landinggo/internal/fsutil"
	"github.com/vk/landinggo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL configuration loading process. Paths may
// be single files or directories; directories are walked recursively. Later
// files win when the same section id appears twice, matching the registry's
// last-write-wins semantics.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.SiteConfig
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Site != nil {
			model.Site = l.translateSite(root.Site)
		}
		for _, section := range root.Sections {
			translated, err := l.translateSection(ctx, section)
			if err != nil {
				return nil, fmt.Errorf("invalid section %q in %s: %w", section.ID, file, err)
			}
			model.Sections[translated.ID] = translated
		}
		logger.Debug("Loaded site configuration file.", "file", file)
	}

	logger.Debug("HCL loading complete.", "sections", len(model.Sections))
	return model, nil
}

// findAllHCLFiles resolves all given paths into a flat, de-duplicated list
// of .hcl files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("config path %s: %w", path, err)
		}

		var files []string
		if info.IsDir() {
			files, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		} else {
			files = []string{path}
		}

		for _, f := range files {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			allFiles = append(allFiles, f)
		}
	}

	return allFiles, nil
}
