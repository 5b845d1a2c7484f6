package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
}

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation; the returned message is safe to surface to the submitter
func decodeAndValidate(r *http.Request, dst interface{}) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "Invalid request body", false
	}
	if err := validate.Struct(dst); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			return "Invalid field: " + fieldErrors[0].Field(), false
		}
		return "Validation failed", false
	}
	return "", true
}

// pathID parses a numeric path value like {quizID}
func pathID(r *http.Request, name string) (uint, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
