// Package services orchestrates a splitting session: classify every
// transaction against the recognition store, apply the decisions made
// for unrecognized ones, allocate shares and aggregate totals. The
// store handle is injected once per session and closed by the caller
// when the session ends.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"fatura/internal/core"
	"fatura/internal/ingest"
	"fatura/internal/storage"
)

// Classification is the per-transaction outcome of consulting the store
// and the decisions file.
type Classification struct {
	Fingerprint string
	Recognized  bool
	Beneficiary string
	Category    string
}

// Result carries everything the report builder reads. Allocations run
// parallel to Transactions; Totals are rebuilt from the allocation set.
type Result struct {
	Transactions    []core.Transaction
	Classifications []Classification
	Allocations     []core.Allocation
	Totals          map[string]decimal.Decimal
}

type Session struct {
	store  RecognitionStore
	roster core.Roster
}

func NewSession(store RecognitionStore, roster core.Roster) *Session {
	return &Session{store: store, roster: roster}
}

// Run executes the pipeline over one statement. For each transaction it
// looks up the fingerprint; recognized charges reuse the cached
// beneficiary and category without any decision. Unrecognized charges
// take their classification from the decisions map and are recorded
// (first write wins). Participants always come from this session:
// a decision's participant list when present, otherwise the beneficiary
// alone. Transactions with neither recognition nor decision stay
// unassigned and contribute to no total.
func (s *Session) Run(ctx context.Context, txs []core.Transaction, decisions map[int]ingest.Decision) (*Result, error) {
	result := &Result{
		Transactions:    txs,
		Classifications: make([]Classification, len(txs)),
		Allocations:     make([]core.Allocation, len(txs)),
	}

	recognized := 0
	for i, tx := range txs {
		fp := core.TransactionFingerprint(tx)
		cls := Classification{Fingerprint: fp}

		rec, err := s.store.Lookup(ctx, fp)
		if err != nil {
			return nil, fmt.Errorf("classify transaction %d: %w", i, err)
		}

		decision, decided := decisions[i]

		var participants []string
		switch {
		case rec != nil:
			cls.Recognized = true
			cls.Beneficiary = rec.Beneficiary
			cls.Category = rec.Category
			participants = []string{rec.Beneficiary}
			if decided && len(decision.Participants) > 0 {
				participants = decision.Participants
			}
			recognized++
		case decided:
			cls.Beneficiary = decision.Beneficiary
			cls.Category = decision.Category
			participants = decision.Participants
			if cls.Beneficiary != "" && cls.Category != "" {
				err := s.store.Record(ctx, storage.Recognition{
					Fingerprint: fp,
					Amount:      core.CanonicalAmount(tx.Amount),
					Installment: tx.InstallmentText(),
					Beneficiary: cls.Beneficiary,
					Category:    cls.Category,
				})
				if err != nil {
					return nil, fmt.Errorf("record transaction %d: %w", i, err)
				}
			}
		default:
			// Neither cached nor decided: stays unassigned.
		}

		allocation, err := core.Allocate(tx, participants, s.roster)
		if err != nil {
			return nil, fmt.Errorf("allocate transaction %d (%s): %w", i, tx.Description, err)
		}

		result.Classifications[i] = cls
		result.Allocations[i] = allocation
	}

	result.Totals = core.Aggregate(result.Allocations)

	slog.InfoContext(ctx, "Session completed",
		"transactions", len(txs),
		"recognized", recognized,
		"decisions", len(decisions),
		"people_with_totals", len(result.Totals))

	return result, nil
}
