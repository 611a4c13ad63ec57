package model

// Shared defaults used by the CLI binary and the HTTP API.
const (
	DefaultBaseCurrency = "USD"
	DefaultAPIListen    = "" // empty = API disabled
	DefaultDBFile       = "bazaar.db"
	// DefaultCommissionPct is the affiliate commission share of an
	// order total, in percent.
	DefaultCommissionPct = 10
	// DefaultEarningsDays is the window shown on the affiliate chart.
	DefaultEarningsDays = 14
)

// Tabs reachable from the storefront's top-level navigation.
const (
	TabHome    = "home"
	TabShop    = "shop"
	TabCart    = "cart"
	TabAccount = "account"
)

// TopTabs lists the top-level section identifiers in display order.
var TopTabs = []string{TabHome, TabShop, TabCart, TabAccount}

// Affiliate dashboard sub-sections.
const (
	AffiliateTabOverview = "overview"
	AffiliateTabLinks    = "links"
	AffiliateTabPayouts  = "payouts"
)

// AffiliateTabs lists the affiliate dashboard sub-sections in display order.
var AffiliateTabs = []string{AffiliateTabOverview, AffiliateTabLinks, AffiliateTabPayouts}

// ValidTab reports whether name is a known top-level tab.
func ValidTab(name string) bool {
	for _, t := range TopTabs {
		if t == name {
			return true
		}
	}
	return false
}

// ValidAffiliateTab reports whether name is a known affiliate sub-section.
func ValidAffiliateTab(name string) bool {
	for _, t := range AffiliateTabs {
		if t == name {
			return true
		}
	}
	return false
}
