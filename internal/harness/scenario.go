package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: which mocks exist, which calls
// the exercise phase records, and which verification checks run with what
// expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Mocks lists the mock names to create, in order. Identities are fixed
	// as "<name>-<position>" for deterministic traces.
	Mocks []string `yaml:"mocks"`

	// Steps is the script: calls and verifications interleaved in order.
	// Interleaving matters for checkpoint checks, where calls after the
	// first no_further_interaction step change the verdict of the second.
	Steps []Step `yaml:"steps"`
}

// Step is one script entry. Exactly one of Call or Verify is set.
type Step struct {
	Call   *CallStep   `yaml:"call,omitempty"`
	Verify *VerifyStep `yaml:"verify,omitempty"`
}

// CallStep records one invocation on a mock.
type CallStep struct {
	Mock string `yaml:"mock"`
	Op   string `yaml:"op"`
	Args []any  `yaml:"args"`
}

// VerifyStep runs one verification check and compares its outcome against
// the expectation.
type VerifyStep struct {
	// Check is one of "count", "order", "no_interaction",
	// "no_further_interaction".
	Check string `yaml:"check"`

	// Mock and Op target a single ledger (count, no_interaction,
	// no_further_interaction).
	Mock string `yaml:"mock,omitempty"`
	Op   string `yaml:"op,omitempty"`

	// Args are the argument matchers for count checks. "*" matches
	// anything; other values match by deep equality.
	Args []any `yaml:"args,omitempty"`

	// Count is the count condition; nil means the exactly-once default.
	Count *CountSpec `yaml:"count,omitempty"`

	// Targets are the ordered queries of an order check.
	Targets []TargetSpec `yaml:"targets,omitempty"`

	// Expect is "pass" or "fail".
	Expect string `yaml:"expect"`

	// Code is the expected failure code when Expect is "fail". Optional.
	Code string `yaml:"code,omitempty"`
}

// CountSpec selects a count condition.
type CountSpec struct {
	// Mode is one of "exactly", "at_least", "at_most", "never".
	Mode string `yaml:"mode"`
	N    int    `yaml:"n"`
}

// TargetSpec is one query of an order check.
type TargetSpec struct {
	Mock string `yaml:"mock"`
	Op   string `yaml:"op"`
	Args []any  `yaml:"args"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks structural invariants before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario requires a name")
	}
	if len(s.Mocks) == 0 {
		return fmt.Errorf("scenario %q declares no mocks", s.Name)
	}

	known := make(map[string]bool, len(s.Mocks))
	for _, name := range s.Mocks {
		if known[name] {
			return fmt.Errorf("scenario %q declares mock %q twice", s.Name, name)
		}
		known[name] = true
	}

	for i, step := range s.Steps {
		switch {
		case step.Call != nil && step.Verify != nil:
			return fmt.Errorf("step %d: call and verify are mutually exclusive", i)
		case step.Call != nil:
			if !known[step.Call.Mock] {
				return fmt.Errorf("step %d: unknown mock %q", i, step.Call.Mock)
			}
		case step.Verify != nil:
			if err := step.Verify.validate(i, known); err != nil {
				return err
			}
		default:
			return fmt.Errorf("step %d: neither call nor verify", i)
		}
	}
	return nil
}

func (v *VerifyStep) validate(i int, known map[string]bool) error {
	if v.Expect != "pass" && v.Expect != "fail" {
		return fmt.Errorf("step %d: expect must be pass or fail, got %q", i, v.Expect)
	}

	switch v.Check {
	case "count", "no_interaction", "no_further_interaction":
		if !known[v.Mock] {
			return fmt.Errorf("step %d: unknown mock %q", i, v.Mock)
		}
	case "order":
		if len(v.Targets) < 2 {
			return fmt.Errorf("step %d: order check needs at least 2 targets", i)
		}
		for _, t := range v.Targets {
			if !known[t.Mock] {
				return fmt.Errorf("step %d: unknown mock %q in order target", i, t.Mock)
			}
		}
	default:
		return fmt.Errorf("step %d: unknown check type %q", i, v.Check)
	}

	if v.Count != nil {
		switch v.Count.Mode {
		case "exactly", "at_least", "at_most", "never":
		default:
			return fmt.Errorf("step %d: unknown count mode %q", i, v.Count.Mode)
		}
	}
	return nil
}
