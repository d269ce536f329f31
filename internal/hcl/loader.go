package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/delegatego/internal/config"
	"github.com/vk/delegatego/internal/ctxlog"
	"github.com/vk/delegatego/internal/fsutil"
	"github.com/vk/delegatego/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode all possible top-level blocks from any
// file. Manifests and scenarios may live in the same file or be split across
// directories; the loader accepts any mix.
type fileRoot struct {
	Actions   []*schema.ActionDefinition `hcl:"action,block"`
	Delegates []*schema.DelegateDecl     `hcl:"delegate,block"`
	Steps     []*schema.Step             `hcl:"step,block"`
	Remain    hcl.Body                   `hcl:",remain"`
}

// Load orchestrates the entire HCL configuration loading process. It is
// agnostic to the origin of the paths and parses any valid block from any
// file, preserving step order within each file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Actions:  make(map[string]*config.ActionDefinition),
		Scenario: &config.Scenario{},
	}

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	seenDelegates := make(map[string]struct{})

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model.
		for _, action := range root.Actions {
			def, err := l.translateActionDefinition(ctx, action)
			if err != nil {
				return nil, nil, err
			}
			if _, exists := model.Actions[def.Name]; exists {
				return nil, nil, fmt.Errorf("action %q is defined more than once (last seen in %s)", def.Name, file)
			}
			model.Actions[def.Name] = def
		}
		for _, decl := range root.Delegates {
			d, err := l.translateDelegateDecl(ctx, decl)
			if err != nil {
				return nil, nil, err
			}
			if _, exists := seenDelegates[d.Name]; exists {
				return nil, nil, fmt.Errorf("delegate %q is declared more than once (last seen in %s)", d.Name, file)
			}
			seenDelegates[d.Name] = struct{}{}
			model.Scenario.Delegates = append(model.Scenario.Delegates, d)
		}
		for _, step := range root.Steps {
			s, err := l.translateStep(ctx, step)
			if err != nil {
				return nil, nil, err
			}
			model.Scenario.Steps = append(model.Scenario.Steps, s)
		}
	}

	logger.Debug("HCL loading complete.",
		"actions", len(model.Actions),
		"delegates", len(model.Scenario.Delegates),
		"steps", len(model.Scenario.Steps),
	)
	return model, NewConverter(), nil
}

// findAllHCLFiles resolves all given paths into a flat, ordered list of .hcl
// files. Directories are searched recursively in sorted order.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				if _, wasSeen := seen[p]; !wasSeen {
					allFiles = append(allFiles, p)
					seen[p] = struct{}{}
				}
			}
		} else if filepath.Ext(path) == ".hcl" {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
