// Package batch runs many cable analyses in one call, either from an
// in-memory parameter list or from an uploaded spreadsheet.
package batch

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/cable"
)

// Outcome pairs one parameter set with its result or failure. A failed item
// never aborts the batch; the error is carried in the outcome instead.
type Outcome struct {
	Params cable.Params  `json:"params"`
	Result *cable.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// Run solves every parameter set in order.
func Run(items []cable.Params) ([]Outcome, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items")
	}
	out := make([]Outcome, 0, len(items))
	for _, item := range items {
		oc := Outcome{Params: item}
		res, err := cable.RunAnalysis(item)
		if err != nil {
			oc.Error = err.Error()
		} else {
			oc.Result = res
		}
		out = append(out, oc)
	}
	return out, nil
}
