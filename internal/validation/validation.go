// Package validation evaluates declarative per-field rules against request
// input and collects every failure instead of stopping at the first.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError is one failed rule, serialized as {field, message}.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered list of failures returned by Validate.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field has at least one failure.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Source provides raw field values. url.Values satisfies it.
type Source interface {
	Get(field string) string
}

// Fields is a map-backed Source for JSON bodies.
type Fields map[string]string

func (f Fields) Get(field string) string { return f[field] }

// Rule is a predicate over one field value, trimmed unless built with Exact.
type Rule struct {
	Field   string
	Check   func(value string) bool
	Message string
	// skipEmpty makes the rule pass when the value is empty.
	skipEmpty bool
	exact     bool
}

// Validate runs rules in declaration order. It returns nil when all pass.
func Validate(src Source, rules ...Rule) Errors {
	var errs Errors
	for _, r := range rules {
		v := src.Get(r.Field)
		if !r.exact {
			v = strings.TrimSpace(v)
		}
		if r.skipEmpty && v == "" {
			continue
		}
		if !r.Check(v) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail is the syntactic local-part@domain.tld check used by Email.
func IsEmail(v string) bool {
	return emailPattern.MatchString(v)
}

func Required(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool { return v != "" }}
}

func Email(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: IsEmail}
}

// OneOf accepts only values in the closed set allowed.
func OneOf(field, message string, allowed ...string) Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		_, ok := set[v]
		return ok
	}}
}

// MinLength counts runes, not bytes.
func MinLength(field string, n int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return utf8.RuneCountInString(v) >= n
	}}
}

func MaxLength(field string, n int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return utf8.RuneCountInString(v) <= n
	}}
}

// Optional lets r pass when the field is absent or blank.
func Optional(r Rule) Rule {
	r.skipEmpty = true
	return r
}

// Exact checks r against the value as submitted. Use it for secrets, where
// surrounding whitespace is significant.
func Exact(r Rule) Rule {
	r.exact = true
	return r
}
