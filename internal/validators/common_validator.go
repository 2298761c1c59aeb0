package validators

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ByField returns the first message reported for each field.
func (v ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}

type FieldKind int

const (
	TextField FieldKind = iota
	IntegerField
	DecimalField
)

// FieldRule describes one form field: the length constraint checked on the
// trimmed input and the kind the stored value must parse as.
type FieldRule struct {
	Field   string
	Label   string
	Tag     string
	Message string
	Kind    FieldKind
}

// Chain is an ordered set of field rules. Every rule runs; failures are collected.
type Chain []FieldRule

// Values holds sanitised (trimmed and escaped) form input keyed by field name.
type Values map[string]string

// Run trims, validates and escapes every field. The returned values are always
// populated, even when validation fails, so forms can be re-rendered.
func (c Chain) Run(lookup func(field string) string) (Values, ValidationErrors) {
	values := make(Values, len(c))
	var errs ValidationErrors

	for _, rule := range c {
		raw := strings.TrimSpace(lookup(rule.Field))

		if err := validate.Var(raw, rule.Tag); err != nil {
			errs = append(errs, ValidationError{
				Field:   rule.Field,
				Tag:     fieldErrorTag(err, rule.Tag),
				Value:   raw,
				Message: rule.Message,
			})
		} else if kindErr, ok := rule.checkKind(raw); !ok {
			errs = append(errs, kindErr)
		}

		values[rule.Field] = Escape(raw)
	}

	return values, errs
}

// Fields lists the rule field names in order.
func (c Chain) Fields() []string {
	fields := make([]string, len(c))
	for i, rule := range c {
		fields[i] = rule.Field
	}
	return fields
}

func (r FieldRule) checkKind(raw string) (ValidationError, bool) {
	var tag, message string
	value := raw
	switch r.Kind {
	case IntegerField:
		tag, message = "required,number", fmt.Sprintf("%s must be a whole number", r.Label)
	case DecimalField:
		tag, message = "required,numeric", fmt.Sprintf("%s must be a number", r.Label)
	default:
		// the stored text is the escaped form
		value = Escape(raw)
		tag, message = fmt.Sprintf("max=%d", maxTextLength), fmt.Sprintf("%s must be at most %d characters", r.Label, maxTextLength)
	}

	if err := validate.Var(value, tag); err != nil {
		return ValidationError{
			Field:   r.Field,
			Tag:     fieldErrorTag(err, tag),
			Value:   raw,
			Message: message,
		}, false
	}
	if !r.fitsKind(raw) {
		return ValidationError{
			Field:   r.Field,
			Tag:     "range",
			Value:   raw,
			Message: message,
		}, false
	}
	return ValidationError{}, true
}

// fitsKind reports whether a value that passed the format check also fits
// the numeric type it is stored as.
func (r FieldRule) fitsKind(raw string) bool {
	var err error
	switch r.Kind {
	case IntegerField:
		_, err = strconv.Atoi(raw)
	case DecimalField:
		_, err = strconv.ParseFloat(raw, 64)
	}
	return err == nil
}

func fieldErrorTag(err error, fallback string) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Tag()
	}
	return fallback
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces HTML-significant characters with entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
