package tui

import (
	"fmt"
	"log"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinybazaar/bazaar/internal/model"
)

// AffiliateState caches the dashboard data, refreshed whenever an
// affiliate tab is restored.
type AffiliateState struct {
	earnings  []model.EarningsPoint
	referrals int64
}

var earningsBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// refreshAffiliate reloads earnings and click counts for the signed-in
// affiliate. Errors leave the previous data in place.
func (m *ShopModel) refreshAffiliate() {
	code := m.session.AffiliateCode()
	if code == "" {
		return
	}

	earnings, err := m.store.EarningsByDay(code, model.DefaultEarningsDays)
	if err != nil {
		log.Printf("tui: earnings for %s: %v", code, err)
		return
	}
	referrals, err := m.store.ReferralCount(code)
	if err != nil {
		log.Printf("tui: referral count for %s: %v", code, err)
		return
	}
	m.affiliate.earnings = earnings
	m.affiliate.referrals = referrals
}

func (m *ShopModel) renderAffiliate() string {
	parts := []string{titleStyle.Render("Affiliate dashboard")}

	// Sub-tab row.
	var tabs []string
	for _, name := range model.AffiliateTabs {
		if name == m.affTab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	switch m.affTab {
	case model.AffiliateTabLinks:
		parts = append(parts, m.renderAffiliateLinks())
	case model.AffiliateTabPayouts:
		parts = append(parts, m.renderAffiliatePayouts())
	default:
		parts = append(parts, m.renderAffiliateOverview())
	}

	parts = append(parts, sectionMargin.Render(dimStyle.Render("tab next section · esc back")))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ShopModel) renderAffiliateOverview() string {
	var total int64
	for _, pt := range m.affiliate.earnings {
		total += pt.Cents
	}

	parts := []string{
		"",
		fmt.Sprintf("Clicks: %d", m.affiliate.referrals),
		fmt.Sprintf("Earned last %d days: %s", model.DefaultEarningsDays,
			priceStyle.Render(m.converter.Format(total, m.displayCurrency))),
		"",
	}
	parts = append(parts, m.renderEarningsChart())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderEarningsChart draws one bar per day of commission.
func (m *ShopModel) renderEarningsChart() string {
	if len(m.affiliate.earnings) == 0 {
		return dimStyle.Render("no earnings yet")
	}

	width := len(m.affiliate.earnings) * 2
	if width > m.width-4 && m.width > 4 {
		width = m.width - 4
	}
	bc := barchart.New(width, 8,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for _, pt := range m.affiliate.earnings {
		bc.Push(barchart.BarData{
			Label: pt.Day.Format("02"),
			Values: []barchart.BarValue{
				{Name: "cents", Value: float64(pt.Cents), Style: earningsBarStyle},
			},
		})
	}
	bc.Draw()
	return bc.View()
}

func (m *ShopModel) renderAffiliateLinks() string {
	code := m.session.AffiliateCode()
	parts := []string{"", dimStyle.Render("Share these links; clicks and orders are credited to you.")}

	parts = append(parts, fmt.Sprintf("  /r/%s", code))
	for _, p := range m.products {
		parts = append(parts, fmt.Sprintf("  /r/%s?product=%s  %s", code, p.ID, dimStyle.Render(p.Name)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ShopModel) renderAffiliatePayouts() string {
	parts := []string{""}
	if len(m.affiliate.earnings) == 0 {
		return dimStyle.Render("nothing to pay out")
	}
	for _, pt := range m.affiliate.earnings {
		if pt.Cents == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("  %s  %s", pt.Day.Format("2006-01-02"),
			priceStyle.Render(m.converter.Format(pt.Cents, m.displayCurrency))))
	}
	if len(parts) == 1 {
		return dimStyle.Render("nothing to pay out")
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
