package lawcheck

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Result is the outcome of one property.
type Result struct {
	Suite     string   `yaml:"suite" json:"suite"`
	Kind      string   `yaml:"kind" json:"kind"`
	Property  string   `yaml:"property" json:"property"`
	Status    string   `yaml:"status" json:"status"`
	Succeeded int      `yaml:"succeeded" json:"succeeded"`
	Discarded int      `yaml:"discarded" json:"discarded"`
	Args      []string `yaml:"args,omitempty" json:"args,omitempty"`
	Error     string   `yaml:"error,omitempty" json:"error,omitempty"`
}

// Passed reports whether the property held for every sample.
func (r Result) Passed() bool {
	return r.Status == "PASSED" || r.Status == "PROVED"
}

// Report collects the results of a run together with the parameters needed
// to reproduce it.
type Report struct {
	Seed          int64    `yaml:"seed" json:"seed"`
	MinSuccessful int      `yaml:"min_successful" json:"min_successful"`
	MaxSize       int      `yaml:"max_size" json:"max_size"`
	Passed        int      `yaml:"passed" json:"passed"`
	Failed        int      `yaml:"failed" json:"failed"`
	Results       []Result `yaml:"results" json:"results"`
}

func (r *Report) add(res Result) {
	if res.Passed() {
		r.Passed++
	} else {
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// Failures returns the results that did not pass, in run order.
func (r Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Encode writes r to w as "yaml" or "json". Format "none" writes nothing.
func Encode(w io.Writer, format string, r Report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case "none":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
