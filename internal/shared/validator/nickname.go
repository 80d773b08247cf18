package validator

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// nicknameRegex allows Hangul, latin letters and digits
var nicknameRegex = regexp.MustCompile(`^[가-힣a-zA-Z0-9]+$`)

// ValidateNickname checks a member nickname: 2-10 characters, Hangul/letters/digits only
func ValidateNickname(fl validator.FieldLevel) bool {
	nickname := fl.Field().String()
	length := utf8.RuneCountInString(nickname)
	if length < 2 || length > 10 {
		return false
	}
	return nicknameRegex.MatchString(nickname)
}
