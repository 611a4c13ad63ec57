package tui

import (
	"testing"

	"github.com/tinybazaar/bazaar/internal/model"
	"github.com/tinybazaar/bazaar/internal/nav"
	"github.com/tinybazaar/bazaar/internal/session"
)

func TestRestorePrivilegesReadLive(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	sess := session.New(st)
	m := newShop(t, Options{Store: st, Session: sess})

	// Guest: privileged entries fall back to home.
	m.Restore(nav.CMS())
	if m.current.Kind != nav.KindHome {
		t.Errorf("guest restoring admin got %v, want home", m.current)
	}
	m.Restore(nav.AffiliateTab(model.AffiliateTabLinks))
	if m.current.Kind != nav.KindHome {
		t.Errorf("guest restoring affiliate tab got %v, want home", m.current)
	}

	// The same entry restores fine once the session has the role.
	if err := sess.Login("ann", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Restore(nav.AffiliateTab(model.AffiliateTabLinks))
	if m.current.Kind != nav.KindAffiliateTab || m.affTab != model.AffiliateTabLinks {
		t.Errorf("affiliate restoring own tab got %v/%s", m.current, m.affTab)
	}

	// Affiliates still cannot restore the admin screen.
	m.Restore(nav.CMS())
	if m.current.Kind != nav.KindHome {
		t.Errorf("affiliate restoring admin got %v, want home", m.current)
	}
}

func TestRestoreUnknownEntriesFallBack(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{})

	m.Restore(nav.Tab("warehouse"))
	if m.current.Kind != nav.KindHome {
		t.Errorf("unknown tab restored to %v, want home", m.current)
	}

	m.Restore(nav.Product("ghost"))
	if m.current.Kind != nav.KindHome {
		t.Errorf("missing product restored to %v, want home", m.current)
	}

	m.Restore(nav.Product("p1"))
	if m.current.Kind != nav.KindProduct || m.productID != "p1" {
		t.Errorf("existing product restored to %v (%q)", m.current, m.productID)
	}
}
