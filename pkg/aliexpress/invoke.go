package aliexpress

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateRequest runs req.Validate when req implements it and reports a
// failure as a validation *Error.
func ValidateRequest(req any) error {
	v, ok := req.(validation.Validatable)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return NewValidationError(err)
	}
	return nil
}

// Invoke validates a typed request, converts it to Params and executes
// method. It is the common path for operations whose request fields map
// one to one onto query parameters.
func Invoke(ctx context.Context, exec Executor, method string, req any) (Body, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	params, err := ParamsFrom(req)
	if err != nil {
		return nil, NewValidationError(err)
	}

	return exec.Execute(ctx, method, params)
}
