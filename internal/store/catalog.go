package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tinybazaar/bazaar/internal/model"
)

const productColumns = "id, name, description, category_id, price_cents, image_url, featured, created_at"

func scanProduct(row interface{ Scan(...any) error }) (model.Product, error) {
	var p model.Product
	var created sql.NullTime
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.PriceCents, &p.ImageURL, &p.Featured, &created)
	if err != nil {
		return model.Product{}, err
	}
	if created.Valid {
		p.CreatedAt = created.Time
	}
	return p, nil
}

// FindProduct looks up one product by id. Returns model.ErrNotFound when
// the id does not resolve.
func (s *Store) FindProduct(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, model.ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("store: find product %q: %w", id, err)
	}
	return p, nil
}

// ListProducts returns products, optionally restricted to one category,
// newest first.
func (s *Store) ListProducts(categoryID string) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	query := "SELECT " + productColumns + " FROM products"
	var args []any
	if categoryID != "" {
		query += " WHERE category_id = ?"
		args = append(args, categoryID)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list products: %w", err)
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FeaturedProducts returns up to limit featured products for the home tab.
func (s *Store) FeaturedProducts(limit int) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE featured ORDER BY created_at DESC, id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("store: featured products: %w", err)
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveProduct inserts or updates a product.
func (s *Store) SaveProduct(p model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO products (id, name, description, category_id, price_cents, image_url, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.CategoryID, p.PriceCents, p.ImageURL, p.Featured, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: save product %q: %w", p.ID, err)
	}
	return nil
}

// DeleteProduct removes a product. Deleting an unknown id is a no-op.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("store: delete product %q: %w", id, err)
	}
	return nil
}

// ListCategories returns all categories in sort order.
func (s *Store) ListCategories() ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, sort FROM categories ORDER BY sort, name")
	if err != nil {
		return nil, fmt.Errorf("store: list categories: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Sort); err != nil {
			return nil, fmt.Errorf("store: scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SaveCategory inserts or updates a category.
func (s *Store) SaveCategory(c model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO categories (id, name, sort) VALUES (?, ?, ?)", c.ID, c.Name, c.Sort)
	if err != nil {
		return fmt.Errorf("store: save category %q: %w", c.ID, err)
	}
	return nil
}

// DeleteCategory removes a category.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id); err != nil {
		return fmt.Errorf("store: delete category %q: %w", id, err)
	}
	return nil
}
