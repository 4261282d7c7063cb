package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	"go-cms-auth/internal/model"
)

// writeOK and writeFail are the only response writers in the service.
// Flows return outcomes; this stage renders them exactly once.

func writeOK(w http.ResponseWriter, message string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(model.Response{
		Status:  0,
		Message: message,
		Payload: payload,
	})
}

func writeFail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidBody):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, model.ErrLoginFailed):
		status = http.StatusUnauthorized
	case errors.Is(err, model.ErrMissingToken), errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = model.ErrUnauthorized.Error()
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrRegistrationFailed):
		status = http.StatusInternalServerError
	default:
		// Lower-layer faults keep their own text in the body, per the
		// in-band error convention, but get logged for operators.
		slog.Error("unclassified error in writeFail", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.Response{
		Status:  1,
		Message: message,
	})
}
