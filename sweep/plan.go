package sweep

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Study is one runnable experiment configuration.
type Study interface {
	// Kind returns the study tag used in plan documents and error labels.
	Kind() string

	// Run executes the sweep against the sinks. Per-cell kernel refusals
	// become NaN rows; only configuration and sink failures return.
	Run(tables TableSink, curves CurveSink) error
}

// Plan is a declarative batch of studies, grouped by kind. The YAML
// document mirrors the field tags:
//
//	horner:
//	  - table: p8
//	interp:
//	  - {table: f2-cheb, func: f2, nodes: chebyshev, ns: [4, 8, 12]}
//	linexp:
//	  - {table: fam1, family: bordered, sizes: [4, 8], precisions: [double]}
type Plan struct {
	Horner  []HornerStudy  `yaml:"horner"`
	Interp  []InterpStudy  `yaml:"interp"`
	Hermite []HermiteStudy `yaml:"hermite"`
	Spline  []SplineStudy  `yaml:"spline"`
	Lsq     []LsqStudy     `yaml:"lsq"`
	Trig    []TrigStudy    `yaml:"trig"`
	Roots   []RootStudy    `yaml:"roots"`
	Linexp  []LinexpStudy  `yaml:"linexp"`
}

// Studies flattens the plan into its execution order: kinds in the
// declaration order of Plan, studies in document order within a kind.
func (p *Plan) Studies() []Study {
	var out []Study
	for _, st := range p.Horner {
		out = append(out, st)
	}
	for _, st := range p.Interp {
		out = append(out, st)
	}
	for _, st := range p.Hermite {
		out = append(out, st)
	}
	for _, st := range p.Spline {
		out = append(out, st)
	}
	for _, st := range p.Lsq {
		out = append(out, st)
	}
	for _, st := range p.Trig {
		out = append(out, st)
	}
	for _, st := range p.Roots {
		out = append(out, st)
	}
	for _, st := range p.Linexp {
		out = append(out, st)
	}
	return out
}

// LoadPlan parses a YAML plan document. Unknown top-level keys are
// rejected so a typo cannot silently drop a study list.
func LoadPlan(doc []byte) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(doc))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("LoadPlan: %w", err)
	}
	return &p, nil
}

// RunPlan executes every study of the plan in order. A failed study is
// recorded and the plan continues; the joined per-study errors come back
// at the end, nil when every study ran clean.
func RunPlan(p *Plan, tables TableSink, curves CurveSink) error {
	if p == nil {
		return errors.New("sweep: nil plan")
	}
	var errs []error
	for _, st := range p.Studies() {
		if err := st.Run(tables, curves); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
