package account

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/edlane/campusdir/core"
)

var (
	// password policy
	pwdMinLen     = 8
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdComplexityText = "password must contain at least 1 uppercase character, 1 lowercase character, 1 digit and 1 special character"
	specialRegex      = regexp.MustCompile("[^A-Za-z0-9]")

	pwdMaxSim     = .7
	pwdAttrSimText = "password cannot be similar to account attributes"

	pwdNoCommonText = "password is too common"
	// short list of the worst offenders; kept sorted for binary search
	commonPasswords = []string{
		"000000", "111111", "123123", "123321", "1234", "12345", "123456",
		"1234567", "12345678", "123456789", "1234567890", "654321", "666666",
		"abc123", "admin", "dragon", "iloveyou", "letmein", "master", "monkey",
		"password", "password1", "password123", "qwerty", "qwerty123",
		"qwertyuiop", "sunshine", "superman", "welcome", "zaq12wsx",
	}
)

func init() {
	sort.Strings(commonPasswords)
}

// ValidatePassword enforces the admin password policy. attrs are account
// attributes (name, username, email) the password must not resemble.
func ValidatePassword(pwd string, attrs ...string) error {
	reportErr := func(text string) error {
		return core.NewValidationError(nil, core.FieldError{Field: "password", Error: text})
	}

	pwdLen := len(pwd)
	if pwdLen < pwdMinLen {
		return reportErr(pwdMinLenText)
	}

	var digitCount int
	var hasUpper, hasLower bool
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			return reportErr(pwdNoSpaceText)
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
		if !hasUpper && unicode.IsUpper(char) {
			hasUpper = true
		}
		if !hasLower && unicode.IsLower(char) {
			hasLower = true
		}
	}

	// - not all numeric
	if digitCount == pwdLen {
		return reportErr(pwdNotAllNumText)
	}

	// - complexity: 1 upper, 1 lower, 1 digit & 1 special
	if !(hasUpper && hasLower && digitCount > 0 && specialRegex.MatchString(pwd)) {
		return reportErr(pwdComplexityText)
	}

	// - no account attrs similarity
	getRatio := func(pass, attr string) float64 {
		if attr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(attr, "")).QuickRatio()
	}
	for _, attr := range attrs {
		if getRatio(pwd, attr) >= pwdMaxSim {
			return reportErr(pwdAttrSimText)
		}
	}

	// - no common passwords
	lpwd := strings.ToLower(pwd)
	if idx := sort.SearchStrings(commonPasswords, lpwd); idx < len(commonPasswords) {
		if match := commonPasswords[idx]; lpwd == match {
			return reportErr(pwdNoCommonText)
		}
	}
	return nil
}
