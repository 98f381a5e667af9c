package harness

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// renderSnapshot serializes a scenario result for golden comparison.
//
// The rendering is canonical: object keys are sorted, strings are NFC
// normalized, and HTML characters are left unescaped. Two runs that record
// the same history produce byte-identical output, which is the property
// golden files depend on.
func renderSnapshot(scenarioName string, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, ev := range result.Trace {
		m := map[string]any{
			"mock": ev.Mock,
			"op":   ev.Op,
			"seq":  ev.Seq,
		}
		if len(ev.Args) > 0 {
			m["args"] = ev.Args
		}
		trace[i] = m
	}

	outcomes := make([]any, len(result.Outcomes))
	for i, oc := range result.Outcomes {
		m := map[string]any{
			"check":  oc.Check,
			"target": oc.Target,
			"pass":   oc.Pass,
		}
		if oc.Code != "" {
			m["code"] = oc.Code
		}
		outcomes[i] = m
	}

	snapshot := map[string]any{
		"scenario_name": scenarioName,
		"trace":         trace,
		"outcomes":      outcomes,
	}

	normalized, err := normalizeStrings(snapshot)
	if err != nil {
		return nil, fmt.Errorf("render snapshot: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf("render snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeStrings walks the value and NFC-normalizes every string, keys
// included. Composed and decomposed spellings of the same text must not
// produce different golden bytes.
func normalizeStrings(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return norm.NFC.String(val), nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			n, err := normalizeStrings(elem)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			n, err := normalizeStrings(elem)
			if err != nil {
				return nil, err
			}
			out[norm.NFC.String(k)] = n
		}
		return out, nil
	case nil, bool, int, int64, float64:
		return val, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T in snapshot", v)
	}
}
