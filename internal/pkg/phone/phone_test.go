package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionForDialCode(t *testing.T) {
	cases := map[string]string{
		"+263": "ZW",
		"+1":   "US",
		"+44":  "GB",
		"27":   "ZA",
	}
	for code, want := range cases {
		got, ok := RegionForDialCode(code)
		assert.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}

	for _, bad := range []string{"", "+", "abc", "+0", "+999"} {
		_, ok := RegionForDialCode(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsSupportedDialCode(t *testing.T) {
	for _, code := range SupportedDialCodes {
		assert.True(t, IsSupportedDialCode(code), code)
		_, ok := RegionForDialCode(code)
		assert.True(t, ok, code)
	}
	assert.True(t, IsSupportedDialCode(" +44 "))
	for _, code := range []string{"+33", "+49", "263", "", "+999"} {
		assert.False(t, IsSupportedDialCode(code), code)
	}
}

func TestE164(t *testing.T) {
	assert.Equal(t, "+14155552671", E164("+1", "(415) 555-2671"))
	assert.Equal(t, "+442071838750", E164("+263", "+44 20 7183 8750"))
	assert.Equal(t, "", E164("+1", ""))
	assert.Equal(t, "", E164("+999", "415 555 2671"))
	assert.Equal(t, "", E164("+1", "12"))
}
