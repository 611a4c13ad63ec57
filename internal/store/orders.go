package store

import (
	"fmt"
	"time"

	"github.com/tinybazaar/bazaar/internal/model"
)

// InsertOrder records a completed checkout.
func (s *Store) InsertOrder(o model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, product_id, quantity, total_cents, ref_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.ProductID, o.Quantity, o.TotalCents, o.RefCode, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: insert order %q: %w", o.ID, err)
	}
	return nil
}

// InsertReferral records one click on an affiliate link.
func (s *Store) InsertReferral(r model.Referral) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO referrals (id, code, product_id, created_at) VALUES (?, ?, ?, ?)",
		r.ID, r.Code, r.ProductID, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: insert referral %q: %w", r.ID, err)
	}
	return nil
}

// ReferralCount returns the number of recorded clicks for a code.
func (s *Store) ReferralCount(code string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM referrals WHERE code = ?", code).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: referral count for %q: %w", code, err)
	}
	return n, nil
}

// EarningsByDay returns the affiliate commission per day over the last
// `days` days for the given code, oldest first. Days without referred
// orders appear with zero cents, so the dashboard chart has a fixed
// x-axis.
func (s *Store) EarningsByDay(code string, days int) ([]model.EarningsPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if days <= 0 {
		days = model.DefaultEarningsDays
	}
	since := time.Now().AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	rows, err := s.db.QueryContext(ctx, `
		SELECT date_trunc('day', created_at) AS day,
		       CAST(SUM(total_cents) * ? / 100 AS BIGINT) AS cents
		FROM orders
		WHERE ref_code = ? AND created_at >= ?
		GROUP BY day
		ORDER BY day`,
		model.DefaultCommissionPct, code, since)
	if err != nil {
		return nil, fmt.Errorf("store: earnings for %q: %w", code, err)
	}
	defer rows.Close()

	byDay := make(map[string]int64)
	for rows.Next() {
		var day time.Time
		var cents int64
		if err := rows.Scan(&day, &cents); err != nil {
			return nil, fmt.Errorf("store: scan earnings: %w", err)
		}
		byDay[day.Format("2006-01-02")] = cents
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]model.EarningsPoint, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i)
		out = append(out, model.EarningsPoint{
			Day:   day,
			Cents: byDay[day.Format("2006-01-02")],
		})
	}
	return out, nil
}
