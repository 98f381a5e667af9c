package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: simple
description: "one call, one check"
mocks:
  - mailer
steps:
  - call: { mock: mailer, op: Send, args: [bob] }
  - verify:
      check: count
      mock: mailer
      op: Send
      args: [bob]
      expect: pass
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "simple", s.Name)
	require.Len(t, s.Steps, 2)
	require.NotNil(t, s.Steps[0].Call)
	assert.Equal(t, []any{"bob"}, s.Steps[0].Call.Args)
	require.NotNil(t, s.Steps[1].Verify)
	assert.Equal(t, "count", s.Steps[1].Verify.Check)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_InvalidYAML(t *testing.T) {
	path := writeScenario(t, "name: [unclosed")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			name:     "missing name",
			scenario: Scenario{Mocks: []string{"m"}},
			wantErr:  "requires a name",
		},
		{
			name:     "no mocks",
			scenario: Scenario{Name: "s"},
			wantErr:  "declares no mocks",
		},
		{
			name:     "duplicate mock",
			scenario: Scenario{Name: "s", Mocks: []string{"m", "m"}},
			wantErr:  "twice",
		},
		{
			name: "unknown mock in call",
			scenario: Scenario{Name: "s", Mocks: []string{"m"},
				Steps: []Step{{Call: &CallStep{Mock: "ghost", Op: "X"}}}},
			wantErr: "unknown mock",
		},
		{
			name: "empty step",
			scenario: Scenario{Name: "s", Mocks: []string{"m"},
				Steps: []Step{{}}},
			wantErr: "neither call nor verify",
		},
		{
			name: "bad expect",
			scenario: Scenario{Name: "s", Mocks: []string{"m"},
				Steps: []Step{{Verify: &VerifyStep{Check: "count", Mock: "m", Expect: "maybe"}}}},
			wantErr: "expect must be pass or fail",
		},
		{
			name: "unknown check",
			scenario: Scenario{Name: "s", Mocks: []string{"m"},
				Steps: []Step{{Verify: &VerifyStep{Check: "mystery", Mock: "m", Expect: "pass"}}}},
			wantErr: "unknown check type",
		},
		{
			name: "order with one target",
			scenario: Scenario{Name: "s", Mocks: []string{"m"},
				Steps: []Step{{Verify: &VerifyStep{Check: "order", Expect: "pass",
					Targets: []TargetSpec{{Mock: "m", Op: "X"}}}}}},
			wantErr: "at least 2 targets",
		},
		{
			name: "bad count mode",
			scenario: Scenario{Name: "s", Mocks: []string{"m"},
				Steps: []Step{{Verify: &VerifyStep{Check: "count", Mock: "m", Expect: "pass",
					Count: &CountSpec{Mode: "around", N: 1}}}}},
			wantErr: "unknown count mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenario_Validate_OK(t *testing.T) {
	s := Scenario{
		Name:  "ok",
		Mocks: []string{"a", "b"},
		Steps: []Step{
			{Call: &CallStep{Mock: "a", Op: "X"}},
			{Verify: &VerifyStep{Check: "order", Expect: "fail",
				Targets: []TargetSpec{{Mock: "a", Op: "X"}, {Mock: "b", Op: "Y"}}}},
		},
	}
	assert.NoError(t, s.Validate())
}
