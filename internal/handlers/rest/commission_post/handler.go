package commission_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/service/commission"
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
	var commissionCreateDTO dto.CommissionCreate
	err := json.NewDecoder(r.Body).Decode(&commissionCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	commissionType := entities.CommissionTypeType(commissionCreateDTO.Type)
	baseAmount := entities.MoneyFromFloat(commissionCreateDTO.BaseAmount)
	commissionModify := entities.CommissionModify{
		ShipmentID: &commissionCreateDTO.ShipmentID,
		Type:       &commissionType,
		Rate:       &commissionCreateDTO.Rate,
		BaseAmount: &baseAmount,
	}
	if commissionCreateDTO.CommissionAmount != nil {
		amount := entities.MoneyFromFloat(*commissionCreateDTO.CommissionAmount)
		commissionModify.CommissionAmount = &amount
	}

	created, err := h.service.AttachCommission(r.Context(), commissionModify)
	if err != nil {
		switch {
		case errors.Is(err, commission.ErrMissingRequiredFields),
			errors.Is(err, commission.ErrInvalidRate),
			errors.Is(err, commission.ErrInvalidBaseAmount),
			errors.Is(err, commission.ErrInvalidCommissionType),
			errors.Is(err, commission.ErrAmountMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, commission.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := CommissionToDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// CommissionToDTO используется и другими commission-хендлерами.
func CommissionToDTO(commissionEntity *entities.Commission) dto.Commission {
	return dto.Commission{
		ID:               commissionEntity.ID,
		ShipmentID:       commissionEntity.ShipmentID,
		Type:             commissionEntity.Type.String(),
		Rate:             commissionEntity.Rate,
		BaseAmount:       commissionEntity.BaseAmount.Float(),
		CommissionAmount: commissionEntity.CommissionAmount.Float(),
		Status:           commissionEntity.Status.String(),
		PaidAt:           commissionEntity.PaidAt,
	}
}
