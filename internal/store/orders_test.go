package store

import (
	"testing"
	"time"

	"github.com/tinybazaar/bazaar/internal/model"
)

func TestStore_EarningsByDay(t *testing.T) {
	s := newTestStore(t)

	now := time.Now()
	orders := []model.Order{
		{ID: "o1", ProductID: "p1", Quantity: 1, TotalCents: 10000, RefCode: "AFF1", CreatedAt: now},
		{ID: "o2", ProductID: "p2", Quantity: 2, TotalCents: 5000, RefCode: "AFF1", CreatedAt: now},
		{ID: "o3", ProductID: "p1", Quantity: 1, TotalCents: 9000, RefCode: "OTHER", CreatedAt: now},
		{ID: "o4", ProductID: "p1", Quantity: 1, TotalCents: 4000, RefCode: "AFF1", CreatedAt: now.AddDate(0, 0, -40)},
	}
	for _, o := range orders {
		if err := s.InsertOrder(o); err != nil {
			t.Fatalf("InsertOrder: %v", err)
		}
	}

	points, err := s.EarningsByDay("AFF1", 7)
	if err != nil {
		t.Fatalf("EarningsByDay: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("points = %d, want 7 (zero-filled)", len(points))
	}

	var total int64
	for _, p := range points {
		total += p.Cents
	}
	// 10% commission on today's two AFF1 orders; the old order is outside
	// the window and OTHER belongs to someone else.
	if want := int64(1500); total != want {
		t.Fatalf("total earnings = %d, want %d", total, want)
	}
	if points[len(points)-1].Cents != 1500 {
		t.Fatalf("today's point = %d, want 1500", points[len(points)-1].Cents)
	}
}

func TestStore_ReferralCount(t *testing.T) {
	s := newTestStore(t)

	for i, code := range []string{"AFF1", "AFF1", "OTHER"} {
		r := model.Referral{ID: string(rune('r' + i)), Code: code, ProductID: "p1"}
		r.ID = r.Code + r.ProductID + string(rune('0'+i))
		if err := s.InsertReferral(r); err != nil {
			t.Fatalf("InsertReferral: %v", err)
		}
	}

	n, err := s.ReferralCount("AFF1")
	if err != nil {
		t.Fatalf("ReferralCount: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}
