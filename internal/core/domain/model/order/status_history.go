package order

import (
	"fmt"
	"slices"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
)

// StatusChange is one entry of the status history.
type StatusChange struct {
	Status    Status
	Timestamp time.Time
	UpdatedBy *kernel.UUID
	Notes     string
}

// StatusHistory is the append-only audit trail of an order. Entries can be
// read as a copy and added with AppendTransition; nothing else mutates it.
type StatusHistory struct {
	entries []StatusChange
}

// RestoreStatusHistory rebuilds a history from storage, replaying every entry
// through AppendTransition so an inconsistent log is rejected.
func RestoreStatusHistory(entries []StatusChange) (StatusHistory, error) {
	var h StatusHistory
	if len(entries) == 0 {
		return h, errs.NewValueIsRequiredError("statusHistory")
	}
	for _, e := range entries {
		if err := h.AppendTransition(e); err != nil {
			return StatusHistory{}, err
		}
	}
	return h, nil
}

// AppendTransition records the next status.
//
// The first entry must be Pending. Every later entry must be a legal edge from
// the previous status (see CanTransitionTo) and must not be older than it.
func (h *StatusHistory) AppendTransition(change StatusChange) error {
	if err := change.Status.Validate(); err != nil {
		return err
	}
	if change.Timestamp.IsZero() {
		return errs.NewValueIsRequiredError("statusHistory.timestamp")
	}

	if len(h.entries) == 0 {
		if change.Status != Pending {
			return errs.NewValueIsInvalidErrorWithCause("statusHistory",
				fmt.Errorf("history must start with %s, got %s", Pending, change.Status))
		}
	} else {
		last := h.entries[len(h.entries)-1]
		if !last.Status.CanTransitionTo(change.Status) {
			return transitionError(last.Status, change.Status)
		}
		if change.Timestamp.Before(last.Timestamp) {
			return errs.NewValueIsInvalidErrorWithCause("statusHistory.timestamp",
				fmt.Errorf("%s is before previous entry", change.Timestamp.Format(time.RFC3339)))
		}
	}

	if change.UpdatedBy != nil {
		by := *change.UpdatedBy
		change.UpdatedBy = &by
	}
	h.entries = append(h.entries, change)
	return nil
}

// Entries returns a copy of the log in chronological order.
func (h StatusHistory) Entries() []StatusChange {
	return slices.Clone(h.entries)
}

func (h StatusHistory) Len() int {
	return len(h.entries)
}

// Current is the status of the latest entry.
func (h StatusHistory) Current() Status {
	if len(h.entries) == 0 {
		return Unknown
	}
	return h.entries[len(h.entries)-1].Status
}

// FirstOf returns the earliest entry with the given status.
func (h StatusHistory) FirstOf(s Status) (StatusChange, bool) {
	for _, e := range h.entries {
		if e.Status == s {
			return e, true
		}
	}
	return StatusChange{}, false
}
