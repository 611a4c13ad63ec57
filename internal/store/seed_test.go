package store

import (
	"os"
	"path/filepath"
	"testing"
)

const seedYAML = `
categories:
  - {id: kitchen, name: Kitchen, sort: 1}
products:
  - {id: p1, name: Teapot, category: kitchen, price_cents: 1999, featured: true}
  - {id: p2, name: Kettle, category: kitchen, price_cents: 2999}
banners:
  - {id: b1, title: Spring sale, link_tab: shop, active: true}
posts:
  - {id: a1, slug: welcome, title: Welcome, body: "# Welcome", published: true}
users:
  - {id: u1, name: admin, password: hunter2, role: admin}
`

func TestStore_SeedFromFile(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "seed.yml")
	if err := os.WriteFile(path, []byte(seedYAML), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if err := s.SeedFromFile(path); err != nil {
		t.Fatalf("SeedFromFile: %v", err)
	}

	products, err := s.ListProducts("")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}

	u, err := s.FindUserByName("admin")
	if err != nil {
		t.Fatalf("FindUserByName: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "hunter2" {
		t.Fatalf("seed password stored unhashed: %q", u.PasswordHash)
	}

	// Seeding a non-empty catalog is a no-op.
	if err := s.SeedFromFile(path); err != nil {
		t.Fatalf("second SeedFromFile: %v", err)
	}
	products, _ = s.ListProducts("")
	if len(products) != 2 {
		t.Fatalf("products after reseed = %d, want 2", len(products))
	}
}
