package controlplane

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/aponysus/rerun/classify"
	"github.com/aponysus/rerun/plan"
)

// FileProvider serves plans parsed once from a YAML plan file.
//
// File format:
//
//	plans:
//	  checkout.flaky:
//	    attempts: 5
//	    min_successes: 2
//	    name: "{displayName} (repetition {currentRepetition} of {totalRepetitions})"
//	    repeat_on: [timeout, temporary]
//
// repeat_on entries are matcher names resolved through a classify.Registry.
type FileProvider struct {
	plans map[string]plan.Plan
}

type fileSchema struct {
	Plans map[string]filePlan `yaml:"plans"`
}

type filePlan struct {
	Attempts     int      `yaml:"attempts"`
	MinSuccesses int      `yaml:"min_successes"`
	BaseName     string   `yaml:"base_name"`
	Name         string   `yaml:"name"`
	RepeatOn     []string `yaml:"repeat_on"`
}

// LoadFile reads and parses a plan file. Environment variables in the file
// are expanded before parsing. A nil registry gets the builtin matchers.
func LoadFile(path string, matchers *classify.Registry) (*FileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return Parse(data, matchers)
}

// Parse builds a FileProvider from raw plan-file contents.
func Parse(data []byte, matchers *classify.Registry) (*FileProvider, error) {
	var raw fileSchema
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return nil, fmt.Errorf("rerun: parse plan file: %w", err)
	}

	if matchers == nil {
		matchers = classify.NewRegistry()
		classify.RegisterBuiltins(matchers)
	}

	plans := make(map[string]plan.Plan, len(raw.Plans))
	for key, fp := range raw.Plans {
		pl := plan.Plan{
			Key:           key,
			BaseName:      fp.BaseName,
			TotalAttempts: fp.Attempts,
			MinSuccesses:  fp.MinSuccesses,
			NamePattern:   fp.Name,
		}
		if pl.TotalAttempts == 0 {
			pl.TotalAttempts = 1
		}
		if pl.MinSuccesses == 0 {
			pl.MinSuccesses = 1
		}
		for _, name := range fp.RepeatOn {
			m, ok := matchers.Get(name)
			if !ok {
				return nil, fmt.Errorf("rerun: plan %q: unknown matcher %q", key, name)
			}
			pl.RepeatOn = append(pl.RepeatOn, m)
		}
		if err := pl.Validate(); err != nil {
			return nil, fmt.Errorf("rerun: plan %q: %w", key, err)
		}
		plans[key] = pl
	}

	return &FileProvider{plans: plans}, nil
}

func (p *FileProvider) GetPlan(_ context.Context, key string) (plan.Plan, error) {
	if p != nil {
		if pl, ok := p.plans[key]; ok {
			return pl, nil
		}
	}
	return plan.Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, key)
}
