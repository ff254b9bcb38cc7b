package usecase

import (
	"context"
	"log"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"
)

// AdjustmentAction says what the reconciler proposes for a flagged line.

type AdjustmentAction string

const (
	AdjustmentActionAdjusted AdjustmentAction = "adjusted"
	AdjustmentActionRemoved  AdjustmentAction = "removed"
)

// ItemAdjustment is one flagged line item with the availability found at
// reconciliation time.
type ItemAdjustment struct {
	ItemRef   string           `json:"item_ref"`
	Requested int              `json:"requested"`
	Available int              `json:"available"`
	Action    AdjustmentAction `json:"action"`
}

// AvailabilityReconciler compares requested line quantities against the
// live availability oracle. It runs at submission and again immediately
// before conversion. Reconciliation never mutates the document itself; the
// caller applies the proposed adjustments once they are confirmed.
type AvailabilityReconciler struct {
	oracle interfaces.IAvailabilityOracle
}

func NewAvailabilityReconciler(oracle interfaces.IAvailabilityOracle) *AvailabilityReconciler {
	return &AvailabilityReconciler{oracle: oracle}
}

// Reconcile returns the adjustments needed to fit the requested lines into
// current availability. An empty result means every line is satisfiable as
// requested. Re-running over already reconciled lines yields no flags.
// Any oracle failure aborts: availability unknown is never treated as zero.
func (r *AvailabilityReconciler) Reconcile(ctx context.Context, items []entities.LineItem) ([]ItemAdjustment, error) {
	var adjustments []ItemAdjustment
	for _, it := range items {
		available, err := r.oracle.Available(ctx, it.ItemRef)
		if err != nil {
			log.Printf("[reconciler][usecase] availability lookup failed item_ref=%s err=%v", it.ItemRef, err)
			return nil, err
		}
		switch {
		case available <= 0:
			adjustments = append(adjustments, ItemAdjustment{
				ItemRef:   it.ItemRef,
				Requested: it.Quantity,
				Available: 0,
				Action:    AdjustmentActionRemoved,
			})
		case available < it.Quantity:
			adjustments = append(adjustments, ItemAdjustment{
				ItemRef:   it.ItemRef,
				Requested: it.Quantity,
				Available: available,
				Action:    AdjustmentActionAdjusted,
			})
		}
	}
	return adjustments, nil
}

// ApplyAdjustments rewrites line items to the reconciled quantities,
// dropping removed lines. The input slice is not modified.
func ApplyAdjustments(items []entities.LineItem, adjustments []ItemAdjustment) []entities.LineItem {
	if len(adjustments) == 0 {
		out := make([]entities.LineItem, len(items))
		copy(out, items)
		return out
	}

	byRef := make(map[string]ItemAdjustment, len(adjustments))
	for _, a := range adjustments {
		byRef[a.ItemRef] = a
	}

	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		adj, flagged := byRef[it.ItemRef]
		if !flagged {
			out = append(out, it)
			continue
		}
		if adj.Action == AdjustmentActionRemoved {
			continue
		}
		it.Quantity = adj.Available
		out = append(out, it)
	}
	return out
}
