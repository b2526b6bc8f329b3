package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"matka/helpers"
)

const (
	// Sentinels for not-yet-declared halves, as used on the source charts.
	PannaUndeclared = "***"
	JodiUndeclared  = "**"
)

const (
	SegmentOpen  = "open"
	SegmentClose = "close"
	SegmentBoth  = "both"
)

var (
	pannaRe = regexp.MustCompile(`^\d{3}$`)
	jodiRe  = regexp.MustCompile(`^\d{2}$`)
)

// DailyResult is the resolved outcome of one market on one date,
// regardless of whether it came from the chart scraper or a manual
// override.
type DailyResult struct {
	DayOfWeek    string `json:"day_of_week"`
	IsClosed     bool   `json:"is_closed"`
	OpeningPanna string `json:"opening_panna"`
	Jodi         string `json:"jodi"`
	ClosingPanna string `json:"closing_panna"`
}

// Normalize re-derives the jodi from the panna digit sums whenever both
// halves are concrete. The raw jodi of an upstream source is never trusted
// once both pannas are known, so override and chart inputs can not drift
// apart.
func (r *DailyResult) Normalize() {
	if pannaRe.MatchString(r.OpeningPanna) && pannaRe.MatchString(r.ClosingPanna) {
		r.Jodi = digitStr(helpers.SumDigits(r.OpeningPanna)) + digitStr(helpers.SumDigits(r.ClosingPanna))
	}
}

// Declared reports whether the half of the result a given segment depends
// on has been declared. A closed (holiday) market declares nothing.
func (r *DailyResult) Declared(segment string) bool {
	if r.IsClosed {
		return false
	}
	switch segment {
	case SegmentOpen:
		return pannaRe.MatchString(r.OpeningPanna)
	case SegmentClose:
		return pannaRe.MatchString(r.ClosingPanna)
	default:
		return jodiRe.MatchString(r.Jodi)
	}
}

func digitStr(d int) string {
	return string(rune('0' + d))
}

// ResultSource resolves the DailyResult of one market for one date.
// A (nil, nil) return means "nothing usable": the caller must skip the
// market's bids, never fail the whole run.
type ResultSource interface {
	ResolveDailyResult(ctx context.Context, gameID string, date time.Time) (*DailyResult, error)
}

// Override is a manually supplied result, one "<digit>-<panna>" string per
// half. A nil half means that half was never declared.
type Override struct {
	FirstHalf  *string `json:"first_half"`
	SecondHalf *string `json:"second_half"`
}

type overridePart struct {
	digit string
	panna string
}

func parseOverridePart(s *string) *overridePart {
	if s == nil || !strings.Contains(*s, "-") {
		return nil
	}
	parts := strings.SplitN(*s, "-", 2)
	return &overridePart{digit: parts[0], panna: parts[1]}
}

// BuildOverrideResult turns a manual override into a DailyResult. Missing
// halves keep the panna sentinel and a "*" in the matching jodi position.
func BuildOverrideResult(o Override) *DailyResult {
	first := parseOverridePart(o.FirstHalf)
	second := parseOverridePart(o.SecondHalf)

	result := &DailyResult{
		DayOfWeek:    "N/A",
		IsClosed:     false,
		OpeningPanna: PannaUndeclared,
		ClosingPanna: PannaUndeclared,
		Jodi:         "**",
	}
	firstDigit, secondDigit := "*", "*"
	if first != nil {
		result.OpeningPanna = first.panna
		firstDigit = first.digit
	}
	if second != nil {
		result.ClosingPanna = second.panna
		secondDigit = second.digit
	}
	result.Jodi = firstDigit + secondDigit
	result.Normalize()
	return result
}

// OverrideFromPannas builds an Override from the raw pannas of the admin
// form. An empty half is left undeclared; a non-empty half that is not
// exactly three digits is an error, never a silent skip.
func OverrideFromPannas(openPanna, closePanna string) (Override, error) {
	o := Override{}
	if openPanna != "" {
		if !pannaRe.MatchString(openPanna) {
			return Override{}, fmt.Errorf("opening panna %q must be exactly three digits", openPanna)
		}
		half := digitStr(helpers.SumDigits(openPanna)) + "-" + openPanna
		o.FirstHalf = &half
	}
	if closePanna != "" {
		if !pannaRe.MatchString(closePanna) {
			return Override{}, fmt.Errorf("closing panna %q must be exactly three digits", closePanna)
		}
		half := digitStr(helpers.SumDigits(closePanna)) + "-" + closePanna
		o.SecondHalf = &half
	}
	return o, nil
}

// OverrideSource serves results from a per-game override list without any
// network call.
type OverrideSource struct {
	Overrides map[string]Override
}

func (s *OverrideSource) ResolveDailyResult(_ context.Context, gameID string, _ time.Time) (*DailyResult, error) {
	o, ok := s.Overrides[gameID]
	if !ok {
		return nil, nil
	}
	return BuildOverrideResult(o), nil
}

// StaticSource answers every lookup with one fixed result. Used by
// jackpot declarations, where a single jodi applies to every bid in
// scope.
type StaticSource struct {
	Result DailyResult
}

func (s *StaticSource) ResolveDailyResult(_ context.Context, _ string, _ time.Time) (*DailyResult, error) {
	result := s.Result
	return &result, nil
}
