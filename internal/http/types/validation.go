// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrMalformedBody is returned when the request body is not valid JSON.
var ErrMalformedBody = errors.New("malformed request body")

// DecodeAndValidate decodes a JSON body into dst and runs struct validation on it.
// Field errors are returned keyed by the lower-cased field name, a non-nil error means
// the body could not be decoded at all.
func DecodeAndValidate(r *http.Request, dst any) (map[string]string, error) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return Validate(dst), nil
}

// Validate runs struct validation and returns nil when dst is valid.
func Validate(dst any) map[string]string {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}

	return fields
}
