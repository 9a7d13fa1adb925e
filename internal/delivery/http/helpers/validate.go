package helpers

import (
	"encoding/json"
	"net/http"

	"memberorg/internal/domain"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns the violated fields; nil or empty means valid.
type Validator interface {
	Validate() []domain.FieldError
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). On decode or validation failure
// it writes a 400 JSON error and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "malformed request body")
		return false
	}
	if v, ok := dest.(Validator); ok {
		if fields := v.Validate(); len(fields) > 0 {
			WriteJSONFieldErrors(w, fields)
			return false
		}
	}
	return true
}
