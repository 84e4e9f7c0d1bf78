// Package pricing holds the static service x market price matrix used to
// generate instant quotes.
package pricing

import (
	"errors"
	"strconv"
)

// ErrUnsupportedCombination is returned when the matrix has no entry for a pair.
var ErrUnsupportedCombination = errors.New("pricing: unsupported service/market combination")

const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

const (
	MarketUS         = "us"
	MarketEurope     = "europe"
	MarketMiddleEast = "middle_east"
)

// Price is one matrix entry. Build it with newPrice so Display always
// matches Amount and Currency.
type Price struct {
	Amount   int    `json:"quoteAmount"`
	Currency string `json:"currency"`
	Display  string `json:"quoteDisplay"`
}

func newPrice(amount int, currency string) Price {
	return Price{Amount: amount, Currency: currency, Display: Format(amount, currency)}
}

// Format renders amount with the currency's conventional prefix symbol.
func Format(amount int, currency string) string {
	symbol := currency + " "
	switch currency {
	case CurrencyUSD:
		symbol = "$"
	case CurrencyEUR:
		symbol = "€"
	}
	return symbol + strconv.Itoa(amount)
}

type service struct {
	key    string
	label  string
	prices map[string]Price
}

// services is ordered the way the quote form lists them.
var services = []service{
	{"branding", "Branding", map[string]Price{
		MarketUS:         newPrice(499, CurrencyUSD),
		MarketEurope:     newPrice(450, CurrencyEUR),
		MarketMiddleEast: newPrice(550, CurrencyUSD),
	}},
	{"social_media_content", "Social Media / Content", map[string]Price{
		MarketUS:         newPrice(249, CurrencyUSD),
		MarketEurope:     newPrice(220, CurrencyEUR),
		MarketMiddleEast: newPrice(300, CurrencyUSD),
	}},
	{"web_design", "Web Design", map[string]Price{
		MarketUS:         newPrice(850, CurrencyUSD),
		MarketEurope:     newPrice(750, CurrencyEUR),
		MarketMiddleEast: newPrice(900, CurrencyUSD),
	}},
	{"content", "Content", map[string]Price{
		MarketUS:         newPrice(249, CurrencyUSD),
		MarketEurope:     newPrice(220, CurrencyEUR),
		MarketMiddleEast: newPrice(300, CurrencyUSD),
	}},
	{"marketing_strategy", "Marketing Strategy", map[string]Price{
		MarketUS:         newPrice(350, CurrencyUSD),
		MarketEurope:     newPrice(320, CurrencyEUR),
		MarketMiddleEast: newPrice(400, CurrencyUSD),
	}},
	{"digital_ads_setup", "Digital Ads (Setup)", map[string]Price{
		MarketUS:         newPrice(199, CurrencyUSD),
		MarketEurope:     newPrice(180, CurrencyEUR),
		MarketMiddleEast: newPrice(250, CurrencyUSD),
	}},
}

var markets = []string{MarketUS, MarketEurope, MarketMiddleEast}

var companySizes = []string{"1-5", "6-20", "21-50", "51-200", "200+"}

func lookup(serviceType string) (service, bool) {
	for _, s := range services {
		if s.key == serviceType {
			return s, true
		}
	}
	return service{}, false
}

// Quote returns the price for serviceType in market.
func Quote(serviceType, market string) (Price, error) {
	s, ok := lookup(serviceType)
	if !ok {
		return Price{}, ErrUnsupportedCombination
	}
	p, ok := s.prices[market]
	if !ok {
		return Price{}, ErrUnsupportedCombination
	}
	return p, nil
}

// ServiceLabel returns the human label, or serviceType itself if unknown.
func ServiceLabel(serviceType string) string {
	if s, ok := lookup(serviceType); ok {
		return s.label
	}
	return serviceType
}

// ServiceTypes lists every quotable service key.
func ServiceTypes() []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.key
	}
	return out
}

func Markets() []string {
	return append([]string(nil), markets...)
}

func CompanySizes() []string {
	return append([]string(nil), companySizes...)
}
