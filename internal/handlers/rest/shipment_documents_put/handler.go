package shipment_documents_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/handlers/rest/shipment_get"
	"freight/internal/service/shipment"
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

	var documentsUpdateDTO dto.DocumentsUpdate
	err := json.NewDecoder(r.Body).Decode(&documentsUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	docs := entities.DocumentStatusModify{
		AWB:  toDocumentState(documentsUpdateDTO.AWB),
		HAWB: toDocumentState(documentsUpdateDTO.HAWB),
		MAWB: toDocumentState(documentsUpdateDTO.MAWB),
		POD:  toDocumentState(documentsUpdateDTO.POD),
	}

	view, err := h.service.UpdateDocuments(r.Context(), id, docs, documentsUpdateDTO.CustomerReference)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrInvalidShipmentID),
			errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidDocumentState):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentClosed):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, shipment.ErrStaleWrite):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipment_get.ViewToDTO(view)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDocumentState(value *string) *entities.DocumentStateType {
	if value == nil {
		return nil
	}
	state := entities.DocumentStateType(*value)
	return &state
}
