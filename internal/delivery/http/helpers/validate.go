package helpers

import (
	"encoding/json"
	"net/http"
	"strings"

	"devevent/internal/domain"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// Decode decodes the request body into dest (with DisallowUnknownFields) and, if dest implements
// Validator, runs Validate(). Decode and validation failures are returned wrapping domain.ErrInvalidInput;
// the error text is safe to show to clients.
func Decode(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return &inputError{msg: "invalid request body: " + err.Error()}
	}
	if dec.More() {
		return &inputError{msg: "invalid request body: unexpected data after JSON object"}
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			return &inputError{msg: strings.Join(errs, "; ")}
		}
	}
	return nil
}

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Unwrap() error { return domain.ErrInvalidInput }
