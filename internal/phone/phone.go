package phone

import "strings"

// Operators lists the carriers offered when the API cannot provide its own list.
var Operators = []string{
	"TIM", "Vodafone", "WindTre", "Iliad", "Very", "Lycamobile", "CMLink", "DailyTelecom", "ho.", "Kena",
}

var prefixes = map[string][]string{
	"TIM":          {"330", "331", "333", "334", "335", "336", "337", "338", "339", "360", "361", "362", "363", "366", "368"},
	"Vodafone":     {"340", "341", "342", "343", "344", "345", "346", "347", "348", "349", "383"},
	"WindTre":      {"320", "322", "323", "324", "325", "326", "327", "328", "329", "380", "388", "389", "390", "391", "392", "393", "397"},
	"Iliad":        {"351", "352", "353"},
	"Very":         {"370", "371"},
	"Lycamobile":   {"373"},
	"CMLink":       {"350"},
	"DailyTelecom": {"375"},
	"ho.":          {"377", "378"},
	"Kena":         {"354", "355"},
}

// Normalize strips everything but digits and an Italian country code. It returns false
// unless ten digits starting with 3 remain.
func Normalize(number string) (string, bool) {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) == 12 && strings.HasPrefix(digits, "39") {
		digits = digits[2:]
	}
	if len(digits) != 10 || digits[0] != '3' {
		return "", false
	}
	return digits, true
}

// SuggestOperator returns the carrier owning the number's three-digit prefix, if known.
func SuggestOperator(number string) (string, bool) {
	digits, ok := Normalize(number)
	if !ok {
		return "", false
	}

	prefix := digits[:3]
	for _, op := range Operators {
		for _, p := range prefixes[op] {
			if p == prefix {
				return op, true
			}
		}
	}
	return "", false
}
