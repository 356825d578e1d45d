package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decision is the classification a person chose for one unrecognized
// transaction: who it belongs to, its category, and who shares the
// cost. This file replaces the interactive step of classification; it is
// keyed by transaction index within the current statement.
type Decision struct {
	Beneficiary  string   `json:"beneficiary"`
	Category     string   `json:"category"`
	Participants []string `json:"participants,omitempty"`
}

// ReadDecisions parses a JSON object mapping transaction indexes to
// decisions, e.g. {"0": {"beneficiary": "Ana", "category": "Streaming"}}.
// When participants are omitted they default to the beneficiary alone,
// mirroring the default split of the interactive flow.
func ReadDecisions(r io.Reader) (map[int]Decision, error) {
	raw := map[string]Decision{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode decisions: %w", err)
	}

	out := make(map[int]Decision, len(raw))
	for key, d := range raw {
		idx, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("decisions: invalid transaction index %q", key)
		}
		if len(d.Participants) == 0 && d.Beneficiary != "" {
			d.Participants = []string{d.Beneficiary}
		}
		out[idx] = d
	}
	return out, nil
}
