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

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo *database.EventRepo
}

func newEventHandler(eventRepo *database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

type eventEnvelope struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

// listEvents retrieves events matching the optional query filters
// @Summary List events
// @Produce json
// @Param category query string false "Exact category; 'all' disables the filter"
// @Param status query string false "Exact status match, e.g. 'upcoming'"
// @Param search query string false "Case-insensitive substring over title/description/location"
// @Param published query string false "Only published entries when 'true' (default)"
// @Success 200 {array} models.Event "List of events"
// @Router /api/events [get]
func (h eventHandler) listEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := database.EventFilter{
			Status:        query.Get("status"),
			Search:        query.Get("search"),
			PublishedOnly: onlyVisible(query.Get("published")),
		}
		if category := query.Get("category"); category != "" && !isCategorySentinel(category) {
			filter.Category = category
		}

		events, err := h.eventRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "events", err))
			return
		}

		h.responder.WriteJSON(w, events)
	}
}

// getEvent retrieves a single event by ID
// @Summary Get event
// @Produce json
// @Param eventID path string true "Event ID" format(uuid)
// @Success 200 {object} models.Event "Event details"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed eventID"
// @Failure 404 {object} ErrorResponse "Not Found - no such event"
// @Router /api/events/{eventID} [get]
func (h eventHandler) getEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")
		if _, err := uuid.Parse(eventID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid event ID"))
			return
		}

		event, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "event", err))
			return
		}
		if event == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// createEvent creates a new event
// @Summary Create event
// @Accept json
// @Produce json
// @Success 201 {object} eventEnvelope "Created event"
// @Failure 400 {object} ErrorResponse "Bad Request - invalid payload"
// @Router /api/events [post]
func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.EventCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		required := []struct{ field, value string }{
			{"title", payload.Title},
			{"description", payload.Description},
			{"category", payload.Category},
		}
		for _, req := range required {
			if req.value == "" {
				h.responder.WriteError(w, errs.NewBadRequestError(req.field+" is required"))
				return
			}
		}
		if payload.Date == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("date is required"))
			return
		}

		event := payload.Event()
		if err := h.eventRepo.Add(&event); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "event", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, eventEnvelope{
			Message: "event created successfully",
			Event:   &event,
		})
	}
}

// updateEvent applies a partial update to an existing event
// @Summary Update event
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID" format(uuid)
// @Success 200 {object} eventEnvelope "Updated event"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed eventID or payload"
// @Failure 404 {object} ErrorResponse "Not Found - no such event"
// @Router /api/events/{eventID} [put]
func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")
		if _, err := uuid.Parse(eventID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid event ID"))
			return
		}

		event, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "event", err))
			return
		}
		if event == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		var payload models.EventUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		payload.Apply(event)
		if err := h.eventRepo.Save(event); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "event", err))
			return
		}

		h.responder.WriteJSON(w, eventEnvelope{
			Message: "event updated successfully",
			Event:   event,
		})
	}
}

// deleteEvent deletes an event by ID
// @Summary Delete event
// @Produce json
// @Param eventID path string true "Event ID" format(uuid)
// @Success 200 {object} MessageResponse "Confirmation message"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed eventID"
// @Failure 404 {object} ErrorResponse "Not Found - no such event"
// @Router /api/events/{eventID} [delete]
func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")
		if _, err := uuid.Parse(eventID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid event ID"))
			return
		}

		deleted, err := h.eventRepo.Delete(eventID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "event", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "event deleted successfully"})
	}
}
