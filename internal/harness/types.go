package harness

// TraceEvent is one recorded invocation in the merged, sequence-ordered
// trace across all mocks of a scenario.
type TraceEvent struct {
	Mock string `json:"mock"`
	Op   string `json:"op"`
	Args []any  `json:"args,omitempty"`
	Seq  int64  `json:"seq"`
}

// Outcome is the observed result of one verification step.
type Outcome struct {
	// Check is the check type that ran.
	Check string `json:"check"`

	// Target names what was checked, e.g. "mailer.Send" or
	// "mailer.Send -> auditor.Log".
	Target string `json:"target"`

	// Pass is the observed verdict.
	Pass bool `json:"pass"`

	// Code is the verification failure code when Pass is false.
	Code string `json:"code,omitempty"`
}

// Result is the outcome of executing one scenario.
type Result struct {
	// Pass is true when every verification step produced its expected
	// verdict (and expected code, where one was declared).
	Pass bool `json:"pass"`

	// Trace contains every recorded invocation in sequence order.
	Trace []TraceEvent `json:"trace"`

	// Outcomes contains one entry per verification step, in script order.
	Outcomes []Outcome `json:"outcomes"`

	// Errors lists expectation mismatches. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// AddError records an expectation mismatch and fails the result.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
