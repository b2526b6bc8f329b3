package services

import (
	"strconv"
	"strings"

	"matka/helpers"
)

// Bet type names as stored on bids. The set is fixed; anything else loses
// by rule so one malformed bid can never block a batch.
const (
	TypeSingleDigits  = "Single Digits"
	TypeJodi          = "Jodi"
	TypeSinglePana    = "Single Pana"
	TypeDoublePana    = "Double Pana"
	TypeTriplePana    = "Triple Pana"
	TypeSPMotor       = "SP Motor"
	TypeDPMotor       = "DP Motor"
	TypeTPMotor       = "TP Motor"
	TypeTwoDigitPanel = "Two Digits Panel"
	TypeGroupJodi     = "Group Jodi"
	TypeRedBracket    = "Red Bracket"
	TypeHalfSangamA   = "Half Sangam A"
	TypeHalfSangamB   = "Half Sangam B"
	TypeFullSangam    = "Full Sangam"
	TypeOddEven       = "Odd Even"
	TypePanelGroup    = "Panel Group"
)

// RequiredSegment maps a bet to the half of the day's result it depends
// on. Jodi-derived types always need both halves no matter which session
// the bid was placed in.
func RequiredSegment(gameType, storedSegment string) string {
	switch gameType {
	case TypeJodi, TypeTwoDigitPanel, TypeGroupJodi, TypeRedBracket,
		TypeHalfSangamA, TypeHalfSangamB, TypeFullSangam, TypePanelGroup:
		return SegmentBoth
	}
	if strings.ToLower(storedSegment) == SegmentClose {
		return SegmentClose
	}
	return SegmentOpen
}

// Classify decides win or lose for one bid against a resolved daily
// result. It is pure: the single authority used by settlement, prediction
// and jackpot declaration alike. Callers must have checked Declared for
// the bid's RequiredSegment first; undeclared segments are a skip, never a
// loss.
func Classify(gameType, storedSegment, answer string, r DailyResult) bool {
	segment := SegmentOpen
	if strings.ToLower(storedSegment) == SegmentClose {
		segment = SegmentClose
	}
	panna := r.OpeningPanna
	if segment == SegmentClose {
		panna = r.ClosingPanna
	}

	switch gameType {
	case TypeSingleDigits:
		return strconv.Itoa(helpers.SumDigits(panna)) == answer

	case TypeJodi:
		return r.Jodi == strings.TrimSpace(answer)

	case TypeDoublePana:
		// Double-pana answers are stored reversed on submission; match
		// against the reversed answer, not the raw one.
		return panna == helpers.Reverse(answer)

	case TypeSinglePana, TypeTriplePana:
		return panna == answer

	case TypeSPMotor, TypeDPMotor, TypeTPMotor:
		// Motors match by substring containment.
		return strings.Contains(panna, answer)

	case TypeTwoDigitPanel:
		derived := strconv.Itoa(helpers.SumDigits(r.OpeningPanna)) + strconv.Itoa(helpers.SumDigits(r.ClosingPanna))
		return derived == answer

	case TypeGroupJodi:
		family := helpers.FindFamily(answer)
		return family != nil && helpers.Contains(family, r.Jodi)

	case TypeRedBracket:
		return helpers.Contains(helpers.FindRedFamily(answer), r.Jodi)

	case TypeHalfSangamA:
		data := helpers.ParseSangam(answer)
		return data["Pana"] == r.OpeningPanna && data["Ank"] == strconv.Itoa(helpers.SumDigits(r.ClosingPanna))

	case TypeHalfSangamB:
		data := helpers.ParseSangam(answer)
		return data["Pana"] == r.ClosingPanna && data["Ank"] == strconv.Itoa(helpers.SumDigits(r.OpeningPanna))

	case TypeFullSangam:
		data := helpers.ParseSangam(answer)
		return data["Open"] == r.OpeningPanna && data["Close"] == r.ClosingPanna

	case TypeOddEven:
		odd := helpers.SumDigits(panna)%2 != 0
		want := strings.ToLower(strings.TrimSpace(answer))
		return (want == "odd" && odd) || (want == "even" && !odd)

	case TypePanelGroup:
		return answer == r.OpeningPanna || answer == r.ClosingPanna
	}

	return false
}
