package model

import "time"

// Role identifies the privilege level of a session.
type Role string

const (
	RoleGuest     Role = "guest"
	RoleUser      Role = "user"
	RoleAffiliate Role = "affiliate"
	RoleAdmin     Role = "admin"
)

// Product is one catalog item.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	// PriceCents is the price in the base currency, minor units.
	PriceCents int64
	ImageURL   string
	Featured   bool
	CreatedAt  time.Time
}

// Category groups products in the shop tab.
type Category struct {
	ID   string
	Name string
	Sort int
}

// Banner is a promotional slot shown on the home tab.
type Banner struct {
	ID       string
	Title    string
	ImageURL string
	LinkTab  string // tab to open when activated, e.g. "shop"
	Active   bool
}

// Post is a CMS article. Body is markdown; the HTTP API serves it rendered.
type Post struct {
	ID        string
	Slug      string
	Title     string
	Body      string
	Published bool
	CreatedAt time.Time
}

// Order records a completed checkout.
type Order struct {
	ID         string
	ProductID  string
	Quantity   int
	TotalCents int64
	// RefCode is the affiliate code that referred this order, if any.
	RefCode   string
	CreatedAt time.Time
}

// Referral records one click on an affiliate link.
type Referral struct {
	ID        string
	Code      string
	ProductID string
	CreatedAt time.Time
}

// User is a stored account.
type User struct {
	ID           string
	Name         string
	PasswordHash string
	Role         Role
	// AffiliateCode is the code embedded in this user's referral links.
	AffiliateCode string
}

// EarningsPoint is one day of affiliate commission for the dashboard chart.
type EarningsPoint struct {
	Day   time.Time
	Cents int64
}
