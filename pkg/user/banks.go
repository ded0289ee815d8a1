package user

import (
	"strings"

	"github.com/jahpay/ramp-aggregator/pkg/provider"
)

// BankList is the body of GET /banks.
type BankList struct {
	Country string          `json:"country"`
	Banks   []provider.Bank `json:"banks"`
	Source  string          `json:"source"`
}

// SourceStatic marks a bank list served from the built-in directory.
const SourceStatic = "static"

var banksByCountry = map[string][]provider.Bank{
	"NG": {
		{Code: "011", Name: "First Bank Nigeria", Country: "NG"},
		{Code: "012", Name: "Union Bank Nigeria", Country: "NG"},
		{Code: "032", Name: "Sterling Bank Nigeria", Country: "NG"},
		{Code: "033", Name: "Zenith Bank Nigeria", Country: "NG"},
		{Code: "044", Name: "Access Bank Nigeria", Country: "NG"},
		{Code: "050", Name: "Ecobank Nigeria", Country: "NG"},
		{Code: "070", Name: "Equitorial Trust Bank", Country: "NG"},
		{Code: "075", Name: "Suntrust Bank Nigeria", Country: "NG"},
		{Code: "076", Name: "Skye Bank", Country: "NG"},
		{Code: "082", Name: "Guaranty Trust Bank", Country: "NG"},
		{Code: "090", Name: "Fidelity Bank Nigeria", Country: "NG"},
		{Code: "100", Name: "SambaPay", Country: "NG"},
		{Code: "101", Name: "Providus Bank", Country: "NG"},
		{Code: "102", Name: "Stanbic IBTC Bank", Country: "NG"},
		{Code: "103", Name: "United Bank For Africa", Country: "NG"},
		{Code: "104", Name: "Wema Bank", Country: "NG"},
		{Code: "105", Name: "First Bank Nigeria PLC", Country: "NG"},
		{Code: "106", Name: "Fidelity Bank Plc", Country: "NG"},
		{Code: "110", Name: "Coronation Merchant Bank", Country: "NG"},
		{Code: "111", Name: "Unity Bank Nigeria", Country: "NG"},
		{Code: "121", Name: "Zenith Bank Nigeria", Country: "NG"},
	},
	"GH": {
		{Code: "GH001", Name: "Ghana Commercial Bank", Country: "GH"},
		{Code: "GH002", Name: "Ecobank Ghana", Country: "GH"},
		{Code: "GH003", Name: "Zenith Bank Ghana", Country: "GH"},
		{Code: "GH004", Name: "Absa Bank Ghana", Country: "GH"},
		{Code: "GH005", Name: "Access Bank Ghana", Country: "GH"},
	},
	"KE": {
		{Code: "KE001", Name: "Equity Bank Kenya", Country: "KE"},
		{Code: "KE002", Name: "Kenya Commercial Bank", Country: "KE"},
		{Code: "KE003", Name: "Safaricom M-Pesa", Country: "KE"},
		{Code: "KE004", Name: "Cooperative Bank of Kenya", Country: "KE"},
		{Code: "KE005", Name: "Diamond Trust Bank", Country: "KE"},
	},
}

// BanksByCountry returns a copy of the built-in bank directory for country,
// or an empty list when the country is not covered.
func BanksByCountry(country string) []provider.Bank {
	banks := banksByCountry[strings.ToUpper(country)]
	out := make([]provider.Bank, len(banks))
	copy(out, banks)
	return out
}

// FindBank looks up a bank by code in the built-in directory.
func FindBank(code, country string) (provider.Bank, bool) {
	for _, b := range banksByCountry[strings.ToUpper(country)] {
		if b.Code == code {
			return b, true
		}
	}
	return provider.Bank{}, false
}
