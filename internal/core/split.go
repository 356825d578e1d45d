package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Allocate computes the equal-share split of a transaction among the
// chosen participants. Every participant must belong to the roster;
// otherwise ErrInvalidParticipant is returned. Participants are
// normalized to roster order with exact duplicates collapsed.
//
// The per-person share is amount / n rounded half-up to 2 decimal
// places. Each transaction rounds independently, so PerPerson * n may
// differ from the amount by at most n * 0.005; the drift is accepted and
// never reconciled. An empty participant set is not an error: the
// allocation comes back unassigned with a zero share.
func Allocate(t Transaction, participants []string, roster Roster) (Allocation, error) {
	want := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if !roster.Contains(p) {
			return Allocation{}, fmt.Errorf("%w: %q", ErrInvalidParticipant, p)
		}
		want[p] = struct{}{}
	}

	var ordered []string
	for _, name := range roster {
		if _, ok := want[name]; ok {
			ordered = append(ordered, name)
		}
	}

	if len(ordered) == 0 {
		return Allocation{PerPerson: decimal.Zero}, nil
	}

	per := t.Amount.DivRound(decimal.NewFromInt(int64(len(ordered))), 2)
	return Allocation{Participants: ordered, PerPerson: per}, nil
}

// Aggregate sums per-person shares over every allocation a person
// appears in. The sum is associative and commutative, so the result does
// not depend on allocation order. People with no participation are
// absent from the result rather than present with zero.
func Aggregate(allocations []Allocation) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, a := range allocations {
		for _, p := range a.Participants {
			totals[p] = totals[p].Add(a.PerPerson)
		}
	}
	return totals
}
