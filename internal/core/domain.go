package core

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Installment is the "Parcela current/total" marker parsed from a
	// transaction description.
	Installment struct {
		Current int
		Total   int
	}

	// Transaction is a single statement line, immutable once loaded.
	Transaction struct {
		Date        time.Time
		Description string
		Amount      decimal.Decimal
		Installment *Installment
	}

	// Allocation is the per-transaction split outcome. Participants are
	// kept in roster order. An empty participant list means the
	// transaction is unassigned and contributes to nobody's total.
	Allocation struct {
		Participants []string
		PerPerson    decimal.Decimal
	}

	// Roster is the ordered set of people eligible to participate in
	// splits for a session.
	Roster []string
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptyDescription   = errors.New("empty description")
	ErrInvalidParticipant = errors.New("participant not in roster")
)

func (i Installment) Text() string {
	return strconv.Itoa(i.Current) + "/" + strconv.Itoa(i.Total)
}

// InstallmentText renders the transaction's installment marker, or the
// empty string when there is none.
func (t Transaction) InstallmentText() string {
	if t.Installment == nil {
		return ""
	}
	return t.Installment.Text()
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	return nil
}

// Unassigned reports whether the allocation has no participants.
func (a Allocation) Unassigned() bool {
	return len(a.Participants) == 0
}

// ParseRoster splits a comma-separated list of names, trimming
// surrounding whitespace and discarding empty entries. Entries with
// identical text collapse into one; names are distinct only when their
// exact text differs.
func ParseRoster(s string) Roster {
	seen := map[string]struct{}{}
	var out Roster
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (r Roster) Contains(name string) bool {
	for _, n := range r {
		if n == name {
			return true
		}
	}
	return false
}
