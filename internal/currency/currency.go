// Package currency converts and formats catalog prices. Rates are fixed
// per run, loaded from configuration; prices are stored in base-currency
// minor units.
package currency

import (
	"fmt"
	"sort"
	"strings"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Converter holds the base currency and the conversion rate table.
type Converter struct {
	base  string
	rates map[string]float64 // units of target per one unit of base
}

// New creates a converter. The base currency always converts at 1.
func New(base string, rates map[string]float64) *Converter {
	c := &Converter{base: strings.ToUpper(base), rates: map[string]float64{}}
	for code, rate := range rates {
		if rate > 0 {
			c.rates[strings.ToUpper(code)] = rate
		}
	}
	c.rates[c.base] = 1
	return c
}

// Base returns the base currency code.
func (c *Converter) Base() string { return c.base }

// Currencies lists the known codes, base first, rest sorted.
func (c *Converter) Currencies() []string {
	out := []string{c.base}
	for code := range c.rates {
		if code != c.base {
			out = append(out, code)
		}
	}
	sort.Strings(out[1:])
	return out
}

// Convert turns base-currency minor units into target currency major
// units. Unknown codes fall back to the base currency.
func (c *Converter) Convert(cents int64, code string) float64 {
	rate, ok := c.rates[strings.ToUpper(code)]
	if !ok {
		rate = 1
	}
	return float64(cents) / 100 * rate
}

// Format renders a price for display: "$12.34" for symbolled currencies,
// "12.34 SEK" otherwise.
func (c *Converter) Format(cents int64, code string) string {
	code = strings.ToUpper(code)
	if _, ok := c.rates[code]; !ok {
		code = c.base
	}
	amount := c.Convert(cents, code)
	if sym, ok := symbols[code]; ok {
		return fmt.Sprintf("%s%.2f", sym, amount)
	}
	return fmt.Sprintf("%.2f %s", amount, code)
}
