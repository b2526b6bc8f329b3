package helpers

import "strings"

// The ten jodi grouping families. Each family holds the eight two-digit
// combinations built from one unordered digit pair and its cut-pair
// (digit+5 mod 10). Fixed domain constants, keyed by canonical pair.
var jodiFamilies = map[string][]string{
	"12": {"12", "17", "21", "26", "62", "67", "71", "76"},
	"13": {"13", "18", "31", "36", "63", "68", "81", "86"},
	"14": {"14", "19", "41", "46", "64", "69", "91", "96"},
	"15": {"01", "06", "10", "15", "51", "56", "60", "65"},
	"23": {"23", "28", "32", "37", "73", "78", "82", "87"},
	"24": {"24", "29", "42", "47", "74", "79", "92", "97"},
	"25": {"02", "07", "20", "25", "52", "57", "70", "75"},
	"34": {"34", "39", "43", "48", "84", "89", "93", "98"},
	"35": {"03", "08", "30", "35", "53", "58", "80", "85"},
	"45": {"04", "09", "40", "45", "54", "59", "90", "95"},
}

// Red-bracket families: half brackets are the mirrored pairs five apart,
// full brackets the doubles. Together with the jodi families these cover
// all 100 two-digit combinations.
var redFamilies = map[string][]string{
	"half_red": {"05", "16", "27", "38", "49", "50", "61", "72", "83", "94"},
	"full_red": {"00", "11", "22", "33", "44", "55", "66", "77", "88", "99"},
}

// SumDigits returns the "Ank" of a numeric string: the digit sum mod 10.
// Non-digit characters are ignored.
func SumDigits(numStr string) int {
	sum := 0
	for _, r := range numStr {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum % 10
}

func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// FindFamily returns the jodi grouping family containing numStr, or nil if
// the combination belongs to a red bracket instead.
func FindFamily(numStr string) []string {
	for _, members := range jodiFamilies {
		for _, m := range members {
			if m == numStr {
				return members
			}
		}
	}
	return nil
}

// FindRedFamily returns the full bracket for the literal answer
// "Full Bracket" and the half bracket for anything else.
func FindRedFamily(answer string) []string {
	if answer == "Full Bracket" {
		return redFamilies["full_red"]
	}
	return redFamilies["half_red"]
}

// ParseSangam parses a composite answer of the form
// "Pana: 123, Ank: 4" into a key/value map. Malformed parts are dropped.
func ParseSangam(answer string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(answer, ",") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		if key != "" && value != "" {
			out[key] = value
		}
	}
	return out
}

// Contains reports whether list holds s.
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
