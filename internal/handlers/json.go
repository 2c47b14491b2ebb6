package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
)

// decodeJSON decodes the request body, turning malformed payloads into a
// validation error instead of a 500.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewValidationError("invalid request body")
	}
	return nil
}
