package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Load reads, decodes and validates the query file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file %s: %w", path, err)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory of %s: %w", path, err)
	}
	return Decode(src, path, dir)
}

// Decode parses HCL source. filename is used in diagnostics only; dir is
// exposed to expressions as config_dir.
func Decode(src []byte, filename, dir string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(dir),
		},
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, evalCtx, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &f, nil
}

// applyDefaults fills omitted settings and enumerations.
func (f *File) applyDefaults() {
	if f.Settings == nil {
		f.Settings = &Settings{}
	}
	if f.Settings.LogLevel == "" {
		f.Settings.LogLevel = DefaultLogLevel
	}
	for _, q := range f.Queries {
		if q.Alphabet == "" {
			q.Alphabet = AlphabetCost
		}
		if q.Rule == "" {
			q.Rule = RuleFree
			if q.Alphabet != AlphabetCost {
				q.Rule = RuleAscend
			}
		}
		if q.Cost == "" {
			q.Cost = CostUnit
			if q.Alphabet == AlphabetCost {
				q.Cost = CostEnter
			}
		}
	}
}

// Validate checks every query block. It expects defaults to be applied.
func (f *File) Validate() error {
	if len(f.Queries) == 0 {
		return fmt.Errorf("%w: no query blocks", ErrInvalidQuery)
	}
	if f.Settings != nil && f.Settings.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidQuery)
	}

	seen := make(map[string]bool, len(f.Queries))
	for _, q := range f.Queries {
		if seen[q.Name] {
			return fmt.Errorf("%w: duplicate query %q", ErrInvalidQuery, q.Name)
		}
		seen[q.Name] = true
		if err := q.validate(); err != nil {
			return fmt.Errorf("query %q: %w", q.Name, err)
		}
	}
	return nil
}

func (q *Query) validate() error {
	switch {
	case q.Input == "":
		return fmt.Errorf("%w: input is empty", ErrInvalidQuery)
	case !oneOf(q.Alphabet, AlphabetCost, AlphabetElevation, AlphabetLetters):
		return fmt.Errorf("%w: unknown alphabet %q", ErrInvalidQuery, q.Alphabet)
	case !oneOf(q.Rule, RuleFree, RuleAscend, RuleDescend):
		return fmt.Errorf("%w: unknown rule %q", ErrInvalidQuery, q.Rule)
	case !oneOf(q.Cost, CostEnter, CostUnit):
		return fmt.Errorf("%w: unknown cost %q", ErrInvalidQuery, q.Cost)
	case q.Width < 0 || q.Height < 0:
		return fmt.Errorf("%w: negative dimensions", ErrInvalidQuery)
	case q.Tiles != nil && len(q.Tiles) != 2:
		return fmt.Errorf("%w: tiles must be [x, y]", ErrInvalidQuery)
	case q.Tiles != nil && q.Alphabet != AlphabetCost:
		return fmt.Errorf("%w: tiles require alphabet %q, got %q", ErrInvalidQuery, AlphabetCost, q.Alphabet)
	case q.From != nil && len(q.From) != 2:
		return fmt.Errorf("%w: from must be [x, y]", ErrInvalidQuery)
	case q.To != nil && len(q.To) != 2:
		return fmt.Errorf("%w: to must be [x, y]", ErrInvalidQuery)
	case q.AnySourceValue != nil && (*q.AnySourceValue < 0 || *q.AnySourceValue > 255):
		return fmt.Errorf("%w: any_source_value %d out of range", ErrInvalidQuery, *q.AnySourceValue)
	case q.AnySourceValue != nil && q.From != nil:
		return fmt.Errorf("%w: from and any_source_value are exclusive", ErrInvalidQuery)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
