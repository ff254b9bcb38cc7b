package response

import (
	"testing"
	"time"

	"comercio_b2b/internal/domain/entities"
)

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quotation{
		Reference: "QT-AAAA1111",
		AccountID: "acc-1",
		Items: []entities.LineItem{
			{ItemRef: "item-1", Name: "Widget", Quantity: 2, UnitPrice: 25, AvailableAtCreation: 9},
		},
		Status:     entities.QuotationStatusIssued,
		Subtotal:   50,
		Tax:        5,
		GrandTotal: 55,
		ValidFrom:    now,
		ValidUntil:   now.Add(24 * time.Hour),
		Decision:     &entities.Decision{Kind: entities.DecisionRevise, Comment: "more units", DecidedAt: now},
		StaffComment: "confirm lead time",
	}

	resp := FromQuotation(q)
	if resp.Reference != "QT-AAAA1111" || resp.Status != "issued" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Items) != 1 || resp.Items[0].AvailableAtCreation != 9 {
		t.Fatalf("items not mapped: %+v", resp.Items)
	}
	if resp.Decision == nil || resp.Decision.Kind != "revise" {
		t.Fatalf("decision not mapped: %+v", resp.Decision)
	}
	if resp.StaffComment != "confirm lead time" {
		t.Fatalf("staff comment not mapped: %q", resp.StaffComment)
	}
}

func TestFromQuotation_DerivedExpiry(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quotation{
		Reference:  "QT-AAAA1111",
		Status:     entities.QuotationStatusIssued,
		ValidUntil: now.Add(-time.Minute),
	}

	resp := FromQuotation(q)
	if resp.Status != "expired" {
		t.Fatalf("expected derived expired status, got %s", resp.Status)
	}

	// Terminal statuses never flip to expired.
	q.Status = entities.QuotationStatusRejected
	resp = FromQuotation(q)
	if resp.Status != "rejected" {
		t.Fatalf("expected rejected, got %s", resp.Status)
	}
}
