package store

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/tinybazaar/bazaar/internal/model"
)

type seedFile struct {
	Categories []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
		Sort int    `yaml:"sort"`
	} `yaml:"categories"`
	Products []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Category    string `yaml:"category"`
		PriceCents  int64  `yaml:"price_cents"`
		ImageURL    string `yaml:"image_url"`
		Featured    bool   `yaml:"featured"`
	} `yaml:"products"`
	Banners []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		ImageURL string `yaml:"image_url"`
		LinkTab  string `yaml:"link_tab"`
		Active   bool   `yaml:"active"`
	} `yaml:"banners"`
	Posts []struct {
		ID        string `yaml:"id"`
		Slug      string `yaml:"slug"`
		Title     string `yaml:"title"`
		Body      string `yaml:"body"`
		Published bool   `yaml:"published"`
	} `yaml:"posts"`
	Users []struct {
		ID            string `yaml:"id"`
		Name          string `yaml:"name"`
		Password      string `yaml:"password"`
		Role          string `yaml:"role"`
		AffiliateCode string `yaml:"affiliate_code"`
	} `yaml:"users"`
}

// SeedFromFile loads catalog fixtures from a YAML file. It runs only when
// the products table is empty, so an existing catalog is never clobbered.
func (s *Store) SeedFromFile(path string) error {
	products, err := s.ListProducts("")
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("store: read seed file: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("store: parse seed file: %w", err)
	}

	for _, c := range sf.Categories {
		if err := s.SaveCategory(model.Category{ID: c.ID, Name: c.Name, Sort: c.Sort}); err != nil {
			return err
		}
	}
	for _, p := range sf.Products {
		err := s.SaveProduct(model.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CategoryID:  p.Category,
			PriceCents:  p.PriceCents,
			ImageURL:    p.ImageURL,
			Featured:    p.Featured,
		})
		if err != nil {
			return err
		}
	}
	for _, b := range sf.Banners {
		err := s.SaveBanner(model.Banner{ID: b.ID, Title: b.Title, ImageURL: b.ImageURL, LinkTab: b.LinkTab, Active: b.Active})
		if err != nil {
			return err
		}
	}
	for _, p := range sf.Posts {
		err := s.SavePost(model.Post{ID: p.ID, Slug: p.Slug, Title: p.Title, Body: p.Body, Published: p.Published})
		if err != nil {
			return err
		}
	}
	for _, u := range sf.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("store: hash seed password for %q: %w", u.Name, err)
		}
		err = s.SaveUser(model.User{
			ID:            u.ID,
			Name:          u.Name,
			PasswordHash:  string(hash),
			Role:          model.Role(u.Role),
			AffiliateCode: u.AffiliateCode,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
