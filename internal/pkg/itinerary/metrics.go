package itinerary

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/currency"
)

// category defaults for missing values
const (
	defaultFlightHours   = 8.0
	defaultActivityHours = 2.0
	defaultHotelKm       = 5.0

	defaultFlightRating   = 4.0
	defaultHotelRating    = 3.0
	defaultActivityRating = 4.0

	// RatingScaleMax is the top of the rating scale.
	RatingScaleMax = 5.0
)

// Metrics are the three raw comparable values of one candidate.
// Convenience is hours for flights and activities and kilometers from the
// center for hotels; lower is better for both.
type Metrics struct {
	Price       float64 `json:"price"`
	Currency    string  `json:"currency,omitempty"`
	Rating      float64 `json:"rating"`
	Convenience float64 `json:"convenience"`

	PriceDefaulted       bool `json:"price_defaulted,omitempty"`
	RatingDefaulted      bool `json:"rating_defaulted,omitempty"`
	ConvenienceDefaulted bool `json:"convenience_defaulted,omitempty"`
}

// Defaulted reports whether any field fell back to a default.
func (m Metrics) Defaulted() bool {
	return m.PriceDefaulted || m.RatingDefaulted || m.ConvenienceDefaulted
}

// ExtractMetrics resolves the raw price, rating and convenience values of c.
// Malformed fields fall back to category defaults; c is not modified.
func ExtractMetrics(c Candidate) Metrics {
	var m Metrics

	price, code, ok := parsePrice(c.Price)
	m.Price = price
	m.PriceDefaulted = !ok
	if code == "" {
		code = c.Currency
	}
	m.Currency = normalizeCurrency(code)

	rating, ok := parseNumber(c.Rating)
	if !ok {
		rating = defaultRating(c.Category)
		m.RatingDefaulted = true
	}
	m.Rating = math.Max(0, math.Min(rating, RatingScaleMax))

	if c.Category.hasDuration() {
		hours, ok := ParseDurationHours(c.Duration)
		if !ok || hours <= 0 {
			hours = defaultHours(c.Category)
			m.ConvenienceDefaulted = true
		}
		m.Convenience = hours
	} else {
		km, ok := parseNumber(c.Distance)
		if !ok || km < 0 {
			km = defaultHotelKm
			m.ConvenienceDefaulted = true
		}
		m.Convenience = km
	}

	return m
}

func defaultRating(c Category) float64 {
	switch c {
	case CategoryHotel:
		return defaultHotelRating
	case CategoryActivity:
		return defaultActivityRating
	}

	return defaultFlightRating
}

func defaultHours(c Category) float64 {
	if c == CategoryActivity {
		return defaultActivityHours
	}

	return defaultFlightHours
}

// parsePrice accepts a bare number, a numeric string, or an object carrying
// amount|total and currency|currencyCode. Hotel offers nesting the price
// under offers[0].price are accepted too.
func parsePrice(v any) (float64, string, bool) {
	switch p := v.(type) {
	case nil:
		return 0, "", false
	case map[string]any:
		if offers, ok := p["offers"].([]any); ok && len(offers) > 0 {
			if offer, ok := offers[0].(map[string]any); ok {
				return parsePrice(offer["price"])
			}
		}

		code := firstString(p, "currency", "currencyCode")

		amount, ok := parseNumber(firstPresent(p, "amount", "total"))
		if !ok || amount < 0 {
			return 0, code, false
		}

		return amount, code, true
	default:
		amount, ok := parseNumber(p)
		if !ok || amount < 0 {
			return 0, "", false
		}

		return amount, "", true
	}
}

// parseNumber converts numbers, json.Number and numeric strings. NaN and
// infinities are rejected.
func parseNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	if n, ok := v.(json.Number); ok {
		v = n.String()
	}

	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return 0, false
		}
	}

	if _, ok := v.(bool); ok {
		return 0, false
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}

	return nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}

	return ""
}

// normalizeCurrency returns the canonical ISO 4217 code or "" when code is
// not a known currency.
func normalizeCurrency(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return ""
	}

	return unit.String()
}

var (
	isoDurationPattern     = regexp.MustCompile(`(?i)^P(?:(\d+(?:\.\d+)?)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
	compactDurationPattern = regexp.MustCompile(`(?i)^(?:(\d+(?:\.\d+)?)\s*d)?\s*(?:(\d+(?:\.\d+)?)\s*h)?\s*(?:(\d+(?:\.\d+)?)\s*m)?$`)
	phraseDurationPattern  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(days?|hours?|hrs?|minutes?|mins?)\b`)
)

// ParseDurationHours converts a duration value into fractional hours.
// Accepted: ISO-8601 ("PT2H30M", "P1DT3H"), compact ("7h 30m"), phrases
// ("2 hours", "90 minutes", "1 day 2 hours"), or a bare number of hours.
func ParseDurationHours(v any) (float64, bool) {
	s, isString := v.(string)
	if !isString {
		return parseNumber(v)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if hours, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(hours) || math.IsInf(hours, 0) {
			return 0, false
		}
		return hours, true
	}

	if m := isoDurationPattern.FindStringSubmatch(s); m != nil && len(s) > 1 && !strings.EqualFold(s, "PT") {
		return unitsToHours(m[1], m[2], m[3], m[4]), true
	}

	if m := compactDurationPattern.FindStringSubmatch(s); m != nil && (m[1] != "" || m[2] != "" || m[3] != "") {
		return unitsToHours(m[1], m[2], m[3], ""), true
	}

	matches := phraseDurationPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, false
	}

	var hours float64
	for _, m := range matches {
		n, _ := strconv.ParseFloat(m[1], 64)
		switch unit := strings.ToLower(m[2]); {
		case strings.HasPrefix(unit, "d"):
			hours += n * 24
		case strings.HasPrefix(unit, "h"):
			hours += n
		default:
			hours += n / 60
		}
	}

	return hours, true
}

func unitsToHours(days, hours, minutes, seconds string) float64 {
	parse := func(s string) float64 {
		if s == "" {
			return 0
		}
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}

	return parse(days)*24 + parse(hours) + parse(minutes)/60 + parse(seconds)/3600
}
