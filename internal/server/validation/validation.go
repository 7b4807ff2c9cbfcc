// Package validation checks request fields against ordered, declarative
// rule lists. Tags are go-playground/validator tags.
package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule applies Tag to the value of Field and reports Message on failure.
type Rule struct {
	Field   string
	Tag     string
	Message string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

// maxBytes limits the encoded length of a string, unlike max which counts
// runes. bcrypt rejects passwords over 72 bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Check evaluates rules in order and returns every violation, at most one
// per field. A field absent from values (or nil) is only checked by rules
// starting with "required", which it fails.
func Check(values map[string]any, rules []Rule) []FieldError {
	var errs []FieldError
	failed := make(map[string]bool)

	for _, r := range rules {
		if failed[r.Field] {
			continue
		}

		v, ok := values[r.Field]
		if !ok || v == nil {
			if !strings.HasPrefix(r.Tag, "required") {
				continue
			}
			v = ""
		}

		if err := validate.Var(v, r.Tag); err != nil {
			failed[r.Field] = true
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}

	return errs
}

var RegisterRules = []Rule{
	{"name", "required", "Name is required"},
	{"name", "min=2,max=100", "Name must be between 2 and 100 characters"},
	{"email", "required", "Email is required"},
	{"email", "email", "Please enter a valid email"},
	{"password", "required", "Password is required"},
	{"password", "min=4", "Password must be at least 4 characters"},
	{"password", "maxbytes=72", "Password must be at most 72 bytes"},
}

var LoginRules = []Rule{
	{"email", "required", "Email is required"},
	{"email", "email", "Please enter a valid email"},
	{"password", "required", "Password is required"},
}

var RecipeRules = []Rule{
	{"title", "required", "Title is required"},
	{"title", "max=200", "Title must be at most 200 characters"},
	{"time", "max=50", "Time must be at most 50 characters"},
	{"category", "max=50", "Category must be at most 50 characters"},
	{"servings", "min=1,max=100", "Servings must be between 1 and 100"},
	{"sourceUrl", "omitempty,http_url", "Source URL must be a valid http(s) URL"},
	{"imageUrl", "omitempty,http_url", "Image URL must be a valid http(s) URL"},
	{"notes", "max=10000", "Notes must be at most 10000 characters"},
	{"ingredients", "dive,max=1000", "Each ingredient must be at most 1000 characters"},
	{"steps", "dive,max=1000", "Each step must be at most 1000 characters"},
}

var ToggleRules = []Rule{
	{"recipeId", "required", "Recipe ID is required"},
}
