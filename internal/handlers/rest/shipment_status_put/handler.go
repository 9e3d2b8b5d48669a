package shipment_status_put

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

	var statusUpdateDTO dto.StatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	proposed := entities.ShipmentStatusType(statusUpdateDTO.Status)
	payload := buildPayload(proposed, &statusUpdateDTO)

	updated, err := h.service.ChangeStatus(r.Context(), id, proposed, payload)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrInvalidShipmentID),
			errors.Is(err, shipment.ErrMissingCancellationReason),
			errors.Is(err, shipment.ErrPODNotConfirmed):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, transition.ErrInvalidTransition),
			errors.Is(err, shipment.ErrShipmentClosed),
			errors.Is(err, shipment.ErrCompletionRequired):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, shipment.ErrStaleWrite):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipment_get.ShipmentToDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// buildPayload собирает типизированную полезную нагрузку перехода.
// Для переходов без обязательных данных возвращает nil.
func buildPayload(proposed entities.ShipmentStatusType, statusUpdateDTO *dto.StatusUpdate) entities.StatusPayload {
	switch proposed {
	case entities.ShipmentCancelled:
		var reason string
		if statusUpdateDTO.Reason != nil {
			reason = *statusUpdateDTO.Reason
		}
		return entities.CancelledPayload{Reason: reason}

	case entities.ShipmentDelivered:
		var confirmed bool
		if statusUpdateDTO.PODConfirmed != nil {
			confirmed = *statusUpdateDTO.PODConfirmed
		}
		var signature string
		if statusUpdateDTO.PODSignature != nil {
			signature = *statusUpdateDTO.PODSignature
		}
		return entities.DeliveredPayload{PODConfirmed: confirmed, Signature: signature}
	}

	return nil
}
