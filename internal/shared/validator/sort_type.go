package validator

import "github.com/go-playground/validator/v10"

// Wall list sort types
const (
	SortLatest  = "latest"
	SortPopular = "popular"
)

// ValidateSortType accepts an empty value (default ordering) or a known sort type
func ValidateSortType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", SortLatest, SortPopular:
		return true
	default:
		return false
	}
}
