package currency

import "fmt"

// Symbol table for the currencies the store snapshot realistically carries.
// Unknown codes fall back to an ISO suffix.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
}

// zeroDecimal currencies have no minor unit.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
}

// Format renders an amount in minor units with the snapshot currency, e.g.
// Format(1998, "USD") == "$19.98".
func Format(cents int64, code string) string {
	if zeroDecimal[code] {
		if sym, ok := symbols[code]; ok {
			return fmt.Sprintf("%s%d", sym, cents)
		}
		return fmt.Sprintf("%d %s", cents, code)
	}

	major := cents / 100
	minor := cents % 100
	if minor < 0 {
		minor = -minor
	}
	if sym, ok := symbols[code]; ok {
		return fmt.Sprintf("%s%d.%02d", sym, major, minor)
	}
	return fmt.Sprintf("%d.%02d %s", major, minor, code)
}
