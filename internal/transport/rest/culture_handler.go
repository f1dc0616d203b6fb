package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"herald/internal/core/culture"
	"herald/internal/domain"
)

type CultureHandler struct {
	svc *culture.Service
}

func NewCultureHandler(svc *culture.Service) *CultureHandler {
	return &CultureHandler{svc: svc}
}

func (h *CultureHandler) Show(w http.ResponseWriter, r *http.Request) {
	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data: map[string]any{
			"current":   h.svc.Current(),
			"supported": h.svc.Supported(),
		},
	})
}

func (h *CultureHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.CultureUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	if err := h.svc.Set(req.Culture); err != nil {
		if errors.Is(err, culture.ErrUnsupportedCulture) || errors.Is(err, culture.ErrInvalidCulture) {
			JSONValidationError(w, map[string]string{"culture": "The selected culture is not supported."})
			return
		}
		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "Culture updated successfully",
		Data:    map[string]string{"current": h.svc.Current()},
	})
}
