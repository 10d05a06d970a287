package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/compustore/backend/internal/cart"
	"github.com/compustore/backend/internal/catalog"
	"github.com/compustore/backend/internal/enquiry"
	"github.com/compustore/backend/pkg/validate"
)

// response is the JSON envelope for all API responses.
type response struct {
	Data  any            `json:"data,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, response{Data: data})
}

func writeErrorMessage(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, response{Error: &errorResponse{Code: code, Message: message}})
}

// badRequestError marks request bodies that failed to decode.
type badRequestError struct{ err error }

func (e badRequestError) Error() string { return e.err.Error() }

// decodeAndValidate decodes the JSON body into dst and validates it,
// classifying decode failures as client errors.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := validate.DecodeAndValidate(r, dst); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			return err
		}
		return badRequestError{err: err}
	}
	return nil
}

// writeError maps domain errors to HTTP responses. Unrecognized errors become
// 500 with a generic body; the detail goes to the log only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *validate.Error
		berr badRequestError
	)
	switch {
	case errors.As(err, &berr):
		writeErrorMessage(w, http.StatusBadRequest, "MALFORMED_BODY", berr.Error())
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, response{Error: &errorResponse{
			Code:    "VALIDATION_FAILED",
			Message: verr.Error(),
			Fields:  verr.Fields(),
		}})
	case errors.Is(err, catalog.ErrInvalidFilterSpec):
		writeErrorMessage(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
	case errors.Is(err, cart.ErrInvalidOperation):
		writeErrorMessage(w, http.StatusBadRequest, "INVALID_CART_OPERATION", err.Error())
	case errors.Is(err, cart.ErrItemNotFound):
		writeErrorMessage(w, http.StatusNotFound, "CART_ITEM_NOT_FOUND", "item not in cart")
	case errors.Is(err, enquiry.ErrInvalidEnquiry):
		writeErrorMessage(w, http.StatusBadRequest, "INVALID_ENQUIRY", err.Error())
	default:
		zctx.From(r.Context()).Error("Request failed", zap.Error(err))
		writeErrorMessage(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
