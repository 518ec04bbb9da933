package payment

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxTotalAmount = 100000

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

var validate = newValidator()

// ValidationError marks input the client can fix; callers map it to a 400.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError { return &ValidationError{msg: msg} }

func (e *ValidationError) Error() string { return e.msg }

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as the client sent them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateCheckoutInput fails fast, before any persistence or provider call.
func validateCheckoutInput(in *CheckoutInput) error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{msg: fmt.Sprintf("missing required field: %s", verrs[0].Field())}
		}
		return err
	}

	if in.TotalAmount <= 0 || in.TotalAmount > maxTotalAmount {
		return &ValidationError{msg: fmt.Sprintf("invalid amount (must be between ₹1 - ₹%d)", maxTotalAmount)}
	}
	if !mobilePattern.MatchString(in.Mobile) {
		return &ValidationError{msg: "invalid mobile number format"}
	}
	return nil
}
