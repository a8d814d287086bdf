package batch

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/pixmask/pkg/pixmask"
)

// Result is the outcome for a single input file.
type Result struct {
	Input  string
	Output string
	// Warned is set when the input name suggests it was already processed in the same Direction.
	Warned bool
	Err    error
}

// Report collects the Result of every file processed by Processor.Run.
type Report struct {
	Direction Direction
	Key       pixmask.Key
	Results   []Result
}

// Succeeded returns the number of files written successfully.
func (r *Report) Succeeded() int {
	var n int
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the Result for each file that could not be processed.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins the error of every failed Result, or returns nil if there were none.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Input, res.Err))
	}
	return errors.Join(errs...)
}
