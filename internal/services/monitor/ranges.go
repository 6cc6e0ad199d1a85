package monitor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tomatodiag/internal/analysis/rules"
	"tomatodiag/internal/model/entities"
)

type yamlRange struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Unit string  `yaml:"unit"`
}

type rangesFile struct {
	Default map[string]yamlRange            `yaml:"default"`
	Fields  map[string]map[string]yamlRange `yaml:"fields"`
}

// Ranges holds the optimal-range configuration per field: a complete default
// set plus per-field overrides.
type Ranges struct {
	def    entities.RangeConfig
	fields map[string]entities.RangeConfig
}

// LoadRanges reads and validates the ranges file. The default set must be
// complete; per-field sections may override any subset of it.
func LoadRanges(path string) (*Ranges, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ranges: %w", err)
	}
	var f rangesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse ranges %s: %w", path, err)
	}

	def := toRangeConfig(f.Default)
	if err := rules.ValidateRanges(def); err != nil {
		return nil, fmt.Errorf("ranges %s: default set incomplete: %w", path, err)
	}

	fields := make(map[string]entities.RangeConfig, len(f.Fields))
	for fieldID, overrides := range f.Fields {
		merged := make(entities.RangeConfig, len(def))
		for k, v := range def {
			merged[k] = v
		}
		for k, v := range toRangeConfig(overrides) {
			merged[k] = v
		}
		fields[fieldID] = merged
	}

	return &Ranges{def: def, fields: fields}, nil
}

// For returns the range configuration for a field, falling back to the
// default set.
func (r *Ranges) For(fieldID string) entities.RangeConfig {
	if cfg, ok := r.fields[fieldID]; ok {
		return cfg
	}
	return r.def
}

func toRangeConfig(m map[string]yamlRange) entities.RangeConfig {
	out := make(entities.RangeConfig, len(m))
	for k, v := range m {
		out[k] = entities.ParameterRange{
			Optimal: entities.Range{Min: v.Min, Max: v.Max},
			Unit:    v.Unit,
		}
	}
	return out
}
