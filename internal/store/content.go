package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tinybazaar/bazaar/internal/model"
)

// ActiveBanners returns the banners shown on the home tab.
func (s *Store) ActiveBanners() ([]model.Banner, error) {
	return s.listBanners(true)
}

// ListBanners returns every banner, for the CMS.
func (s *Store) ListBanners() ([]model.Banner, error) {
	return s.listBanners(false)
}

func (s *Store) listBanners(activeOnly bool) ([]model.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	query := "SELECT id, title, image_url, link_tab, active FROM banners"
	if activeOnly {
		query += " WHERE active"
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: list banners: %w", err)
	}
	defer rows.Close()

	var out []model.Banner
	for rows.Next() {
		var b model.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkTab, &b.Active); err != nil {
			return nil, fmt.Errorf("store: scan banner: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// SaveBanner inserts or updates a banner.
func (s *Store) SaveBanner(b model.Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO banners (id, title, image_url, link_tab, active) VALUES (?, ?, ?, ?, ?)",
		b.ID, b.Title, b.ImageURL, b.LinkTab, b.Active)
	if err != nil {
		return fmt.Errorf("store: save banner %q: %w", b.ID, err)
	}
	return nil
}

// DeleteBanner removes a banner.
func (s *Store) DeleteBanner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM banners WHERE id = ?", id); err != nil {
		return fmt.Errorf("store: delete banner %q: %w", id, err)
	}
	return nil
}

const postColumns = "id, slug, title, body, published, created_at"

func scanPost(row interface{ Scan(...any) error }) (model.Post, error) {
	var p model.Post
	var created sql.NullTime
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.Published, &created); err != nil {
		return model.Post{}, err
	}
	if created.Valid {
		p.CreatedAt = created.Time
	}
	return p, nil
}

// FindPostBySlug looks up one post. Returns model.ErrNotFound when the
// slug does not resolve.
func (s *Store) FindPostBySlug(slug string) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	row := s.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts WHERE slug = ?", slug)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, model.ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("store: find post %q: %w", slug, err)
	}
	return p, nil
}

// ListPosts returns posts, newest first.
func (s *Store) ListPosts(publishedOnly bool) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	query := "SELECT " + postColumns + " FROM posts"
	if publishedOnly {
		query += " WHERE published"
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: list posts: %w", err)
	}
	defer rows.Close()

	var out []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SavePost inserts or updates a post.
func (s *Store) SavePost(p model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	// Conflict target must be explicit: posts carries a second UNIQUE
	// constraint on slug. A slug taken by a different post surfaces as a
	// constraint error.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, slug, title, body, published, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			slug       = excluded.slug,
			title      = excluded.title,
			body       = excluded.body,
			published  = excluded.published,
			created_at = excluded.created_at`,
		p.ID, p.Slug, p.Title, p.Body, p.Published, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: save post %q: %w", p.ID, err)
	}
	return nil
}

// DeletePost removes a post.
func (s *Store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id); err != nil {
		return fmt.Errorf("store: delete post %q: %w", id, err)
	}
	return nil
}

// FindUserByName looks up a stored account.
func (s *Store) FindUserByName(name string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	var u model.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, password_hash, role, affiliate_code FROM users WHERE name = ?", name).
		Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Role, &u.AffiliateCode)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("store: find user %q: %w", name, err)
	}
	return u, nil
}

// SaveUser inserts or updates an account.
func (s *Store) SaveUser(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	// users has a second UNIQUE constraint on name, so the conflict
	// target must be explicit. A name taken by a different account
	// surfaces as a constraint error.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, password_hash, role, affiliate_code)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name           = excluded.name,
			password_hash  = excluded.password_hash,
			role           = excluded.role,
			affiliate_code = excluded.affiliate_code`,
		u.ID, u.Name, u.PasswordHash, string(u.Role), u.AffiliateCode)
	if err != nil {
		return fmt.Errorf("store: save user %q: %w", u.Name, err)
	}
	return nil
}
