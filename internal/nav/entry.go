// Package nav implements the storefront's screen-stack navigation:
// a logical stack of screens layered over a single linear history, with
// back-press interception and an exit-confirmation handshake.
package nav

import (
	"fmt"
	"strings"
)

// Kind discriminates the Entry union. The set is closed: every screen
// reachable through back navigation is one of these.
type Kind int

const (
	KindHome Kind = iota
	KindTab
	KindProduct
	KindCMS
	KindAffiliateTab
)

// Entry describes one logical screen. Exactly one payload field is
// meaningful, selected by Kind.
type Entry struct {
	Kind Kind
	// Tab holds the section name for KindTab and KindAffiliateTab.
	Tab string
	// ProductID holds the catalog id for KindProduct. Existence is not
	// guaranteed at restore time.
	ProductID string
}

// Home is the stack floor.
func Home() Entry { return Entry{Kind: KindHome} }

// Tab is a top-level section screen.
func Tab(name string) Entry { return Entry{Kind: KindTab, Tab: name} }

// Product is an open product detail screen.
func Product(id string) Entry { return Entry{Kind: KindProduct, ProductID: id} }

// CMS is the admin content manager screen.
func CMS() Entry { return Entry{Kind: KindCMS} }

// AffiliateTab is a sub-section of the affiliate dashboard.
func AffiliateTab(name string) Entry { return Entry{Kind: KindAffiliateTab, Tab: name} }

const fragmentPrefix = "product-"

// Fragment returns the address fragment for the entry: "product-<id>"
// for products, empty otherwise.
func (e Entry) Fragment() string {
	if e.Kind == KindProduct {
		return fragmentPrefix + e.ProductID
	}
	return ""
}

// ProductIDFromFragment extracts the product id from a "product-<id>"
// fragment. ok is false when the fragment does not match the convention.
func ProductIDFromFragment(fragment string) (id string, ok bool) {
	rest, found := strings.CutPrefix(fragment, fragmentPrefix)
	if !found || rest == "" {
		return "", false
	}
	return rest, true
}

func (e Entry) String() string {
	switch e.Kind {
	case KindHome:
		return "home"
	case KindTab:
		return "tab:" + e.Tab
	case KindProduct:
		return "product:" + e.ProductID
	case KindCMS:
		return "cms"
	case KindAffiliateTab:
		return "affiliate:" + e.Tab
	default:
		return fmt.Sprintf("unknown(%d)", int(e.Kind))
	}
}
