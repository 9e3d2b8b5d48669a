package shipment_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/handlers/rest/shipment_get"
	"freight/internal/service/shipment"
	"freight/internal/service/transition"
	"freight/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var completionRequestDTO dto.CompletionRequest
	err := json.NewDecoder(r.Body).Decode(&completionRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	confirmations := entities.Confirmations{
		ExtraCostsRecorded: completionRequestDTO.ExtraCostsRecorded,
		DocumentsComplete:  completionRequestDTO.DocumentsComplete,
		CWTValidated:       completionRequestDTO.CWTValidated,
	}

	result, err := h.service.AttemptCompletion(r.Context(), id, confirmations)
	if err != nil {
		var blocked *shipment.CompletionBlockedError
		switch {
		case errors.As(err, &blocked):
			h.writeBlocked(w, blocked)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, transition.ErrInvalidTransition):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, shipment.ErrStaleWrite):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipment_get.ShipmentToDTO(result.Shipment)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// writeBlocked отдаёт полный чеклист невыполненных предпосылок.
func (h *Handler) writeBlocked(w http.ResponseWriter, blocked *shipment.CompletionBlockedError) {
	blockers := make([]dto.BlockingReason, 0, len(blocked.Reasons))
	for _, reason := range blocked.Reasons {
		blockers = append(blockers, dto.BlockingReason{
			Field:   reason.Field,
			Message: reason.Message,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	err := json.NewEncoder(w).Encode(dto.CompletionBlocked{Blockers: blockers})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
