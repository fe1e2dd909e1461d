package intake

// countryCurrency maps a client country to its billing currency.
var countryCurrency = map[string]string{
	"United States":        "USD",
	"Canada":               "CAD",
	"United Kingdom":       "GBP",
	"Germany":              "EUR",
	"France":               "EUR",
	"Spain":                "EUR",
	"Italy":                "EUR",
	"Netherlands":          "EUR",
	"Belgium":              "EUR",
	"Austria":              "EUR",
	"Japan":                "JPY",
	"China":                "CNY",
	"India":                "INR",
	"Australia":            "AUD",
	"Brazil":               "BRL",
	"Mexico":               "MXN",
	"Switzerland":          "CHF",
	"Sweden":               "SEK",
	"Norway":               "NOK",
	"Denmark":              "DKK",
	"South Korea":          "KRW",
	"Singapore":            "SGD",
	"Hong Kong":            "HKD",
	"New Zealand":          "NZD",
	"South Africa":         "ZAR",
	"Russia":               "RUB",
	"Turkey":               "TRY",
	"Saudi Arabia":         "SAR",
	"United Arab Emirates": "AED",
	"Israel":               "ILS",
	"Poland":               "PLN",
	"Czech Republic":       "CZK",
	"Hungary":              "HUF",
	"Thailand":             "THB",
	"Malaysia":             "MYR",
	"Indonesia":            "IDR",
	"Philippines":          "PHP",
	"Vietnam":              "VND",
	"Argentina":            "ARS",
	"Chile":                "CLP",
	"Colombia":             "COP",
	"Peru":                 "PEN",
	"Egypt":                "EGP",
	"Nigeria":              "NGN",
	"Kenya":                "KES",
	"Ghana":                "GHS",
	"Morocco":              "MAD",
	"Pakistan":             "PKR",
	"Bangladesh":           "BDT",
	"Sri Lanka":            "LKR",
	"Nepal":                "NPR",
}

// CurrencyFor derives the billing currency from a country name, defaulting to
// USD for unknown or empty countries.
func CurrencyFor(country string) string {
	if c, ok := countryCurrency[country]; ok {
		return c
	}
	return "USD"
}
