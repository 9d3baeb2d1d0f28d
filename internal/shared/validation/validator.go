package validation

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
)

var feedURLPattern = regexp.MustCompile(`^(https?)://[^/]+\.[^/]+/?.*$`)

var validate = newValidate()

// Rules maps a validation tag to the sentinel error reported when it fails.
type Rules map[string]error

func (r Rules) errFor(tag string) error {
	if err, ok := r[tag]; ok {
		return err
	}
	return errors.ErrInvalidValue
}

func newValidate() *validator.Validate {
	validate := validator.New()

	// Problems are reported under their settings keys
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	registerCustomValidators(validate)

	return validate
}

func registerCustomValidators(validate *validator.Validate) {
	// Absolute http(s) URL with a dotted host
	validate.RegisterValidation("feedurl", func(fl validator.FieldLevel) bool {
		return IsFeedURL(fl.Field().String())
	}, true)

	// Not empty once surrounding whitespace is removed
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}, true)

	// URL without query or fragment, so paths can be appended to it
	validate.RegisterValidation("noquery", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return u.RawQuery == "" && !u.ForceQuery && u.Fragment == "" && u.RawFragment == ""
	})
}

// IsFeedURL reports whether raw is an absolute http or https URL whose host contains a dot.
func IsFeedURL(raw string) bool {
	if !feedURLPattern.MatchString(raw) {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || u.Opaque != "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Struct validates s and returns one Problem per failed field, in field order.
// Problem.Field is the dotted settings path below s, e.g. "tunables.feed_fetch_concurrency"
// or "feeds[2].url". The error is only non-nil when s cannot be validated at all.
func Struct(s any, rules Rules) ([]errors.Problem, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return nil, err
	}

	return lo.Map(fieldErrs, func(fe validator.FieldError, _ int) errors.Problem {
		return errors.Problem{
			Field: fieldPath(fe),
			Value: fieldValue(fe),
			Err:   rules.errFor(fe.Tag()),
		}
	}), nil
}

// Var validates a single value against tag.
func Var(field any, tag string) error {
	return validate.Var(field, tag)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldValue(fe validator.FieldError) string {
	switch v := fe.Value().(type) {
	case string:
		return v
	case int:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
