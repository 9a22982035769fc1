package app

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	gw "github.com/tbeaudouin05/paypal-trellai/api/services/paypal/gateway"
)

// Largest interval_count PayPal accepts per unit.
var maxIntervalCount = map[string]int{
	gw.IntervalDay:   365,
	gw.IntervalWeek:  52,
	gw.IntervalMonth: 12,
	gw.IntervalYear:  1,
}

// requestValidator is safe for concurrent use and caches struct metadata.
var requestValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals are validated in their canonical string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}
	mustRegister("notblank", validators.NotBlank)
	mustRegister("nonnegative", nonNegativeDecimal)

	v.RegisterStructValidation(trialIntervalLimit, TrialPricing{})
	return v
}

func nonNegativeDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

// trialIntervalLimit enforces PayPal's per-unit interval_count maximum.
func trialIntervalLimit(sl validator.StructLevel) {
	t := sl.Current().Interface().(TrialPricing)
	if limit, ok := maxIntervalCount[t.IntervalUnit]; ok && t.IntervalCount > limit {
		sl.ReportError(t.IntervalCount, "intervalCount", "IntervalCount", "max", strconv.Itoa(limit))
	}
}

func (r SubscriptionRequest) validate() error {
	err := requestValidator.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return &ValidationError{Fields: verrs, msg: strings.Join(msgs, "; ")}
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "SubscriptionRequest.")
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "email":
		return field + " is not a valid email address"
	case "nonnegative":
		return field + " must not be negative"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// ValidationError lists the request fields that failed validation. It
// matches ErrInvalidRequest under errors.Is.
type ValidationError struct {
	Fields validator.ValidationErrors
	msg    string
}

func (e *ValidationError) Error() string {
	return ErrInvalidRequest.Error() + ": " + e.msg
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidRequest, e.Fields}
}
