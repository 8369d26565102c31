package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sncblog/backend/database"
	"github.com/sncblog/backend/errs"
	"github.com/sncblog/backend/models"
)

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ServiceRepo
}

func newServiceHandler(serviceRepo *database.ServiceRepo) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

type serviceEnvelope struct {
	Message string          `json:"message"`
	Service *models.Service `json:"service"`
}

// listServices retrieves services matching the optional query filters.
// Services have no single-get endpoint; the full filtered list is the read surface.
// @Summary List services
// @Produce json
// @Param category query string false "Exact category; 'all' disables the filter"
// @Param active query string false "Only active entries when 'true' (default)"
// @Success 200 {array} models.Service "List of services"
// @Router /api/services [get]
func (h serviceHandler) listServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := database.ServiceFilter{
			ActiveOnly: onlyVisible(query.Get("active")),
		}
		if category := query.Get("category"); category != "" && !isCategorySentinel(category) {
			filter.Category = category
		}

		services, err := h.serviceRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "services", err))
			return
		}

		h.responder.WriteJSON(w, services)
	}
}

// createService creates a new service
// @Summary Create service
// @Accept json
// @Produce json
// @Success 201 {object} serviceEnvelope "Created service"
// @Failure 400 {object} ErrorResponse "Bad Request - invalid payload"
// @Router /api/services [post]
func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.ServiceCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		required := []struct{ field, value string }{
			{"name", payload.Name},
			{"description", payload.Description},
			{"url", payload.URL},
			{"category", payload.Category},
		}
		for _, req := range required {
			if req.value == "" {
				h.responder.WriteError(w, errs.NewBadRequestError(req.field+" is required"))
				return
			}
		}

		service := payload.Service()
		if err := h.serviceRepo.Add(&service); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "service", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, serviceEnvelope{
			Message: "service created successfully",
			Service: &service,
		})
	}
}

// updateService applies a partial update to an existing service
// @Summary Update service
// @Accept json
// @Produce json
// @Param serviceID path string true "Service ID" format(uuid)
// @Success 200 {object} serviceEnvelope "Updated service"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed serviceID or payload"
// @Failure 404 {object} ErrorResponse "Not Found - no such service"
// @Router /api/services/{serviceID} [put]
func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID := chi.URLParam(r, "serviceID")
		if _, err := uuid.Parse(serviceID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid service ID"))
			return
		}

		service, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "service", err))
			return
		}
		if service == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		var payload models.ServiceUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		payload.Apply(service)
		if err := h.serviceRepo.Save(service); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "service", err))
			return
		}

		h.responder.WriteJSON(w, serviceEnvelope{
			Message: "service updated successfully",
			Service: service,
		})
	}
}

// deleteService deletes a service by ID
// @Summary Delete service
// @Produce json
// @Param serviceID path string true "Service ID" format(uuid)
// @Success 200 {object} MessageResponse "Confirmation message"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed serviceID"
// @Failure 404 {object} ErrorResponse "Not Found - no such service"
// @Router /api/services/{serviceID} [delete]
func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID := chi.URLParam(r, "serviceID")
		if _, err := uuid.Parse(serviceID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid service ID"))
			return
		}

		deleted, err := h.serviceRepo.Delete(serviceID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "service", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "service deleted successfully"})
	}
}
