package parser

// UnknownCurrency is returned for any glyph without a known ISO 4217 code.
const UnknownCurrency = "UNKNOWN"

var currencyCodes = map[string]string{
	"₽": "RUB",
	"$": "USD",
	"€": "EUR",
}

// CurrencyCode maps a currency glyph (₽, $, €) to its ISO 4217 code.
func CurrencyCode(glyph string) string {
	if code, ok := currencyCodes[glyph]; ok {
		return code
	}
	return UnknownCurrency
}
