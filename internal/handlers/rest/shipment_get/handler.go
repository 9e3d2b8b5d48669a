package shipment_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"freight/internal/entities"
	"freight/internal/generated/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := h.service.GetShipment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	viewDTO := ViewToDTO(view)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(viewDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// ViewToDTO используется и другими shipment-хендлерами, возвращающими чеклист.
func ViewToDTO(view *shipment.View) dto.ShipmentView {
	missing := make([]string, 0, len(view.Documents.Missing))
	for _, name := range view.Documents.Missing {
		missing = append(missing, name.String())
	}

	return dto.ShipmentView{
		Shipment: ShipmentToDTO(view.Shipment),
		SLA: dto.SLAEvaluation{
			Status:         view.SLA.Status.String(),
			RemainingHours: view.SLA.RemainingHours,
		},
		Documents: dto.DocumentsEvaluation{
			States: dto.Documents{
				AWB:  view.Shipment.Documents.State(entities.DocAWB).String(),
				HAWB: view.Shipment.Documents.State(entities.DocHAWB).String(),
				MAWB: view.Shipment.Documents.State(entities.DocMAWB).String(),
				POD:  view.Shipment.Documents.State(entities.DocPOD).String(),
			},
			CompletionPct: view.Documents.CompletionPct,
			Missing:       missing,
			AllComplete:   view.Documents.AllComplete,
		},
	}
}

func ShipmentToDTO(shipmentEntity *entities.Shipment) dto.Shipment {
	return dto.Shipment{
		ID:                 shipmentEntity.ID,
		Status:             shipmentEntity.Status.String(),
		ServiceType:        shipmentEntity.ServiceType.String(),
		SLADeadline:        shipmentEntity.SLADeadline,
		CustomerReference:  shipmentEntity.CustomerReference,
		CancellationReason: shipmentEntity.CancellationReason,
		PODSignature:       shipmentEntity.PODSignature,
		CompletedAt:        shipmentEntity.CompletedAt,
		StatusChangedAt:    shipmentEntity.StatusChangedAt,
		Version:            shipmentEntity.Version,
	}
}
