package orchestration

import (
	"fmt"
	"io"
)

// Step records the outcome of one remote operation.
type Step struct {
	Name string
	Err  error
}

// OK reports whether the step succeeded.
func (s Step) OK() bool {
	return s.Err == nil
}

// CleanupResult records the outcome of one teardown call.
type CleanupResult struct {
	Resource Resource
	Err      error
}

// Report is the result record of one run: every step's outcome, the
// identifiers of created resources, and the per-resource cleanup
// results. It is inspected on every exit path so the operator can
// reconcile leftover billable resources after a failed run.
type Report struct {
	Steps   []Step
	Created []Resource
	Cleanup []CleanupResult
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// AddStep records a step outcome and returns its error unchanged, so
// call sites can record and propagate in one expression.
func (r *Report) AddStep(name string, err error) error {
	r.Steps = append(r.Steps, Step{Name: name, Err: err})
	return err
}

// Failed reports whether any step or cleanup call failed.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	for _, c := range r.Cleanup {
		if c.Err != nil {
			return true
		}
	}
	return false
}

// Write renders the report for the operator.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w, "Run report:")
	for _, s := range r.Steps {
		if s.Err != nil {
			fmt.Fprintf(w, "  step %-40s FAILED: %v\n", s.Name, s.Err)
		} else {
			fmt.Fprintf(w, "  step %-40s ok\n", s.Name)
		}
	}

	if len(r.Created) > 0 {
		fmt.Fprintln(w, "Created resources:")
		for _, res := range r.Created {
			fmt.Fprintf(w, "  %s\n", res)
		}
	}

	if len(r.Cleanup) > 0 {
		fmt.Fprintln(w, "Cleanup results:")
		for _, c := range r.Cleanup {
			if c.Err != nil {
				fmt.Fprintf(w, "  %-50s NOT cleaned up: %v\n", c.Resource, c.Err)
			} else {
				fmt.Fprintf(w, "  %-50s cleaned up\n", c.Resource)
			}
		}
	}
}
