package model

import "errors"

// ErrNotFound is returned by store lookups when no row matches.
var ErrNotFound = errors.New("model: not found")

// ProductFinder is the narrow lookup contract the navigation restorer needs.
type ProductFinder interface {
	FindProduct(id string) (Product, error)
}

// CatalogStore provides product and category CRUD.
type CatalogStore interface {
	ProductFinder
	ListProducts(categoryID string) ([]Product, error)
	FeaturedProducts(limit int) ([]Product, error)
	SaveProduct(p Product) error
	DeleteProduct(id string) error
	ListCategories() ([]Category, error)
	SaveCategory(c Category) error
	DeleteCategory(id string) error
}

// ContentStore provides banner and post CRUD for the CMS.
type ContentStore interface {
	ActiveBanners() ([]Banner, error)
	ListBanners() ([]Banner, error)
	SaveBanner(b Banner) error
	DeleteBanner(id string) error
	FindPostBySlug(slug string) (Post, error)
	ListPosts(publishedOnly bool) ([]Post, error)
	SavePost(p Post) error
	DeletePost(id string) error
}

// OrderStore records checkouts and affiliate activity.
type OrderStore interface {
	InsertOrder(o Order) error
	InsertReferral(r Referral) error
	// EarningsByDay returns one point per day over the last `days` days
	// for the given affiliate code, oldest first. Days without orders
	// are included with zero cents.
	EarningsByDay(code string, days int) ([]EarningsPoint, error)
	ReferralCount(code string) (int64, error)
}

// UserStore resolves stored accounts for login.
type UserStore interface {
	FindUserByName(name string) (User, error)
	SaveUser(u User) error
}

// Store is the unified persistence contract.
type Store interface {
	CatalogStore
	ContentStore
	OrderStore
	UserStore
}
