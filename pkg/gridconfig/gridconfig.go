// Package gridconfig loads grid geometry and search budgets from HCL files,
// so deployments can tune the engine without rebuilding.
//
//	grid {
//	  width  = 13
//	  height = 13
//	  wrap   = false
//	}
//
//	search {
//	  trials  = 1000
//	  workers = 4
//	  seed    = 42
//	}
package gridconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/gocty"

	"crosswarped.com/weave/pkg/primitives"
	"crosswarped.com/weave/xw_generator/generator"
)

// Settings is the decoded and validated file content.
type Settings struct {
	Grid   primitives.Config
	Search generator.Params
}

type fileSchema struct {
	Grid   *gridBlock   `hcl:"grid,block"`
	Search *searchBlock `hcl:"search,block"`
}

type gridBlock struct {
	Width  int   `hcl:"width"`
	Height int   `hcl:"height"`
	Wrap   *bool `hcl:"wrap,optional"`
}

type searchBlock struct {
	Trials  *int `hcl:"trials,optional"`
	Workers *int `hcl:"workers,optional"`
	// Seed stays an expression so absence and explicit zero are
	// distinguishable.
	Seed hcl.Expression `hcl:"seed,optional"`
}

// Load parses and validates an HCL settings file. Omitted search attributes
// fall back to the engine defaults; the grid block is required.
func Load(path string) (Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("gridconfig: parsing %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// LoadBytes is Load for in-memory HCL source.
func LoadBytes(src []byte, filename string) (Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("gridconfig: parsing %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (Settings, error) {
	var raw fileSchema
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return Settings{}, fmt.Errorf("gridconfig: decoding %s: %w", filename, diags)
	}
	if raw.Grid == nil {
		return Settings{}, fmt.Errorf("gridconfig: %s: missing required grid block", filename)
	}

	s := Settings{
		Grid:   primitives.Config{Width: raw.Grid.Width, Height: raw.Grid.Height},
		Search: generator.DefaultParams(),
	}
	if raw.Grid.Wrap != nil {
		s.Grid.Wrap = *raw.Grid.Wrap
	}
	if raw.Search != nil {
		if raw.Search.Trials != nil {
			s.Search.Trials = *raw.Search.Trials
		}
		if raw.Search.Workers != nil {
			s.Search.Workers = *raw.Search.Workers
		}
		if raw.Search.Seed != nil {
			val, diags := raw.Search.Seed.Value(nil)
			if diags.HasErrors() {
				return Settings{}, fmt.Errorf("gridconfig: %s: evaluating seed: %w", filename, diags)
			}
			if !val.IsNull() {
				if err := gocty.FromCtyValue(val, &s.Search.Seed); err != nil {
					return Settings{}, fmt.Errorf("gridconfig: %s: seed must be an unsigned integer: %w", filename, err)
				}
			}
		}
	}

	if err := s.Grid.Validate(); err != nil {
		return Settings{}, fmt.Errorf("gridconfig: %s: %w", filename, err)
	}
	if err := s.Search.Validate(); err != nil {
		return Settings{}, fmt.Errorf("gridconfig: %s: %w", filename, err)
	}
	return s, nil
}
