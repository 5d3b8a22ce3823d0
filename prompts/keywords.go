package prompts

import (
	"maps"
	"slices"
	"strings"
)

var countryMapping = map[string]string{
	"ALGERIA":        "ALG",
	"ARGENTINA":      "ARG",
	"AUSTRALIA":      "AUS",
	"AUSTRIA":        "AUT",
	"BAHAMAS":        "BAH",
	"BAHRAIN":        "BRN",
	"BELGIUM":        "BEL",
	"BOTSWANA":       "BOT",
	"BRAZIL":         "BRA",
	"BURUNDI":        "BDI",
	"CANADA":         "CAN",
	"CHINA":          "CHN",
	"COLOMBIA":       "COL",
	"CROATIA":        "CRO",
	"CUBA":           "CUB",
	"CZECHIA":        "CZE",
	"DENMARK":        "DEN",
	"ECUADOR":        "ECU",
	"ETHIOPIA":       "ETH",
	"FINLAND":        "FIN",
	"FRANCE":         "FRA",
	"GERMANY":        "GER",
	"GREAT BRITAIN":  "GBR",
	"GREECE":         "GRE",
	"GRENADA":        "GRN",
	"HUNGARY":        "HUN",
	"INDIA":          "IND",
	"IRELAND":        "IRL",
	"ITALY":          "ITA",
	"JAMAICA":        "JAM",
	"JAPAN":          "JPN",
	"KENYA":          "KEN",
	"MEXICO":         "MEX",
	"MOROCCO":        "MAR",
	"NETHERLANDS":    "NED",
	"NEW ZEALAND":    "NZL",
	"NIGERIA":        "NGR",
	"NORWAY":         "NOR",
	"POLAND":         "POL",
	"PORTUGAL":       "POR",
	"PUERTO RICO":    "PUR",
	"QATAR":          "QAT",
	"SOUTH AFRICA":   "RSA",
	"SOUTH KOREA":    "KOR",
	"SPAIN":          "ESP",
	"SWEDEN":         "SWE",
	"SWITZERLAND":    "SUI",
	"TRINIDAD":       "TTO",
	"UGANDA":         "UGA",
	"UKRAINE":        "UKR",
	"UNITED KINGDOM": "GBR",
	"UNITED STATES":  "USA",
	"USA":            "USA",
	"VENEZUELA":      "VEN",
}

var countryCodes = func() []string {
	arr := make([]string, 0, len(countryMapping))
	for v := range maps.Values(countryMapping) {
		arr = append(arr, v)
	}
	slices.Sort(arr)
	return slices.Compact(arr)
}()

// CountryCode resolves a country name or three letter code, in any case, to
// its code.
func CountryCode(input string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(input))
	if _, found := slices.BinarySearch(countryCodes, upper); found {
		return upper, true
	}
	code, ok := countryMapping[upper]
	return code, ok
}

// NormalizeCountry is CountryCode for free text: unknown input is returned
// trimmed and unchanged.
func NormalizeCountry(input string) string {
	if code, ok := CountryCode(input); ok {
		return code
	}
	return strings.TrimSpace(input)
}
