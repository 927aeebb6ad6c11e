// Package quality validates a generated exercise set before it is returned.
package quality

import (
	"fmt"

	"github.com/abhisek/lingodrill/internal/exercise"
)

// Severity separates structural failures from advisory findings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Advisory band for the total number of items in a set.
const (
	MinItems = 10
	MaxItems = 40
)

// Issue describes one failed check.
type Issue struct {
	Validator string        `json:"validator"` // Name of the validator that failed
	Severity  Severity      `json:"severity"`
	Kind      exercise.Kind `json:"kind,omitempty"`
	ItemID    string        `json:"item_id,omitempty"`
	Message   string        `json:"message"` // Human-readable description of the failure
}

func (i *Issue) Error() string {
	if i.ItemID != "" {
		return fmt.Sprintf("validator %q: %s %s: %s", i.Validator, i.Kind, i.ItemID, i.Message)
	}
	return fmt.Sprintf("validator %q: %s", i.Validator, i.Message)
}

// Validator checks an exercise set.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "options".
	Name() string

	// Validate returns every issue found. It must not modify set.
	Validate(set *exercise.Set) []Issue
}

// Report is the outcome of a gate check.
type Report struct {
	// Passed is true iff no error-severity issue was found.
	Passed     bool    `json:"passed"`
	Errors     []Issue `json:"errors"`
	Warnings   []Issue `json:"warnings"`
	TotalItems int     `json:"total_items"`
}

// Gate runs validators over a set. It never drops or edits items.
type Gate struct {
	Validators []Validator
}

// NewGate returns a gate with the default validators.
func NewGate() *Gate {
	return &Gate{Validators: DefaultValidators()}
}

// DefaultValidators returns validators in reporting order.
func DefaultValidators() []Validator {
	return []Validator{
		&BlankValidator{},
		&OptionsValidator{},
		&DuplicateWordValidator{},
		&TranslationValidator{},
		&ExampleValidator{},
		&VolumeValidator{Min: MinItems, Max: MaxItems},
	}
}

// Check validates set and returns the report.
func (g *Gate) Check(set *exercise.Set) Report {
	r := Report{TotalItems: set.Total(), Errors: []Issue{}, Warnings: []Issue{}}
	for _, v := range g.Validators {
		for _, issue := range v.Validate(set) {
			if issue.Validator == "" {
				issue.Validator = v.Name()
			}
			if issue.Severity == SeverityWarning {
				r.Warnings = append(r.Warnings, issue)
			} else {
				issue.Severity = SeverityError
				r.Errors = append(r.Errors, issue)
			}
		}
	}
	r.Passed = len(r.Errors) == 0
	return r
}
