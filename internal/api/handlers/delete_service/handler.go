package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgNotFound         = "услуга не найдена"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{serviceId}
// Созданные ранее записи сохраняют снимок услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]
	if serviceID == "" {
		h.logger.Warn("DELETE /services/{id} - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	if err := h.catalog.Delete(r.Context(), serviceID); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted successfully: service_id=%s", serviceID)
	handlers.RespondNoContent(w)
}
