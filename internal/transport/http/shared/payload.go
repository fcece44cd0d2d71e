package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"fleetops/internal/transport/http/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValid decodes a JSON body into dst and runs struct tag
// validation. On failure it writes the error response and reports
// false so handlers can return early.
func DecodeValid(w http.ResponseWriter, r *http.Request, dst any, requestID string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			issues := make([]ValidationIssue, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				issues = append(issues, ValidationIssue{Field: fe.Field(), Reason: "failed " + fe.Tag() + " validation"})
			}
			FailValidation(w, requestID, issues)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}
	return true
}
