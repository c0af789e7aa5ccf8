// Package phone wraps libphonenumber for the dialing-code menu and for
// rendering guest numbers in E.164 on the admin dashboard.
package phone

import (
	"slices"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultDialCode is preselected on the stay form (Zimbabwe).
const DefaultDialCode = "+263"

// SupportedDialCodes is the dialing-code menu offered on the stay form,
// default first.
var SupportedDialCodes = []string{DefaultDialCode, "+1", "+44", "+27"}

// IsSupportedDialCode reports whether code is on the stay form's menu.
func IsSupportedDialCode(code string) bool {
	return slices.Contains(SupportedDialCodes, strings.TrimSpace(code))
}

// RegionForDialCode returns the main ISO region for a calling code ("+44" -> "GB").
func RegionForDialCode(code string) (string, bool) {
	code = strings.TrimPrefix(strings.TrimSpace(code), "+")
	if code == "" {
		return "", false
	}
	n, err := strconv.Atoi(code)
	if err != nil || n <= 0 {
		return "", false
	}
	region := phonenumbers.GetRegionCodeForCountryCode(n)
	if region == "" || region == phonenumbers.UNKNOWN_REGION {
		return "", false
	}
	return region, true
}

// E164 formats number in E.164. A number already starting with "+" is parsed
// as international; otherwise dialCode supplies the country. Returns "" when
// the number cannot be parsed or is not a possible number.
func E164(dialCode, number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}

	region := ""
	if !strings.HasPrefix(number, "+") {
		r, ok := RegionForDialCode(dialCode)
		if !ok {
			return ""
		}
		region = r
	}

	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(parsed) {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
