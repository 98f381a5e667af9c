package harness

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/attest"
	"github.com/roach88/attest/internal/testutil"
	"github.com/roach88/attest/internal/verify"
)

// Run executes a scenario against a fresh registry and reports whether every
// verification step produced its declared verdict.
//
// Mock identities are fixed as "<name>-<position>" so repeated runs of the
// same scenario record identical traces, which is what makes golden
// comparison possible.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	ids := make([]string, len(scenario.Mocks))
	for i, name := range scenario.Mocks {
		ids[i] = fmt.Sprintf("%s-%d", name, i+1)
	}
	reg := attest.NewRegistry(attest.WithIDGenerator(testutil.NewFixedIDs(ids...)))

	mocks := make(map[string]*attest.Mock, len(scenario.Mocks))
	for _, name := range scenario.Mocks {
		mocks[name] = reg.NewMock(name)
	}

	result := &Result{Pass: true}

	for i, step := range scenario.Steps {
		if step.Call != nil {
			mocks[step.Call.Mock].Intercept(step.Call.Op, step.Call.Args...)
			continue
		}

		outcome := runVerify(step.Verify, mocks)
		result.Outcomes = append(result.Outcomes, outcome)

		wantPass := step.Verify.Expect == "pass"
		if outcome.Pass != wantPass {
			result.AddError(fmt.Sprintf("step %d (%s %s): expected %s, got %s",
				i, outcome.Check, outcome.Target, step.Verify.Expect, verdict(outcome.Pass)))
			continue
		}
		if !outcome.Pass && step.Verify.Code != "" && outcome.Code != step.Verify.Code {
			result.AddError(fmt.Sprintf("step %d (%s %s): expected code %s, got %s",
				i, outcome.Check, outcome.Target, step.Verify.Code, outcome.Code))
		}
	}

	result.Trace = mergedTrace(scenario, mocks)
	return result, nil
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}

// mergedTrace collects every mock's records and interleaves them by
// sequence number into one chronological trace.
func mergedTrace(scenario *Scenario, mocks map[string]*attest.Mock) []TraceEvent {
	var trace []TraceEvent
	for _, name := range scenario.Mocks {
		for _, rec := range mocks[name].Recorded() {
			trace = append(trace, TraceEvent{
				Mock: name,
				Op:   rec.Op,
				Args: rec.Args,
				Seq:  rec.Seq,
			})
		}
	}
	sort.Slice(trace, func(i, j int) bool { return trace[i].Seq < trace[j].Seq })
	return trace
}

func runVerify(v *VerifyStep, mocks map[string]*attest.Mock) Outcome {
	switch v.Check {
	case "count":
		_, err := attest.Verify(mocks[v.Mock], countCond(v.Count)).Call(v.Op, coerceArgs(v.Args)...)
		return outcomeFor(v.Check, v.Mock+"."+v.Op, err)

	case "order":
		vs := make([]*attest.Verification, len(v.Targets))
		names := make([]string, len(v.Targets))
		for i, t := range v.Targets {
			names[i] = t.Mock + "." + t.Op
			// Count is judged by the order check itself; at_least 0 keeps
			// a zero-match target from failing here instead of there.
			vs[i], _ = attest.Verify(mocks[t.Mock], attest.AtLeast(0)).Call(t.Op, coerceArgs(t.Args)...)
		}
		err := attest.InOrder(vs...)
		return outcomeFor(v.Check, strings.Join(names, " -> "), err)

	case "no_interaction":
		err := attest.VerifyNoInteraction(mocks[v.Mock])
		return outcomeFor(v.Check, v.Mock, err)

	default: // "no_further_interaction", validated upstream
		err := attest.VerifyNoFurtherInteraction(mocks[v.Mock])
		return outcomeFor(v.Check, v.Mock, err)
	}
}

func outcomeFor(check, target string, err error) Outcome {
	out := Outcome{Check: check, Target: target, Pass: err == nil}
	if err != nil {
		var ve *verify.Error
		if errors.As(err, &ve) {
			out.Code = string(ve.Code)
		}
	}
	return out
}

func countCond(spec *CountSpec) attest.CountMatcher {
	if spec == nil {
		return attest.Exactly(1)
	}
	switch spec.Mode {
	case "at_least":
		return attest.AtLeast(spec.N)
	case "at_most":
		return attest.AtMost(spec.N)
	case "never":
		return attest.Never()
	default:
		return attest.Exactly(spec.N)
	}
}

// coerceArgs maps scenario argument values to matchers: "*" is the wildcard,
// everything else matches literally.
func coerceArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok && s == "*" {
			out[i] = attest.Any()
			continue
		}
		out[i] = a
	}
	return out
}
