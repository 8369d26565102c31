package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sncblog/backend/database"
	"github.com/sncblog/backend/errs"
	"github.com/sncblog/backend/models"
)

type settingsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	settingRepo *database.SettingRepo
}

func newSettingsHandler(settingRepo *database.SettingRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		settingRepo: settingRepo,
	}
}

type settingEnvelope struct {
	Message string          `json:"message"`
	Setting *models.Setting `json:"setting"`
}

// settingValue is the single-key read view: descriptions and timestamps are
// suppressed.
type settingValue struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// listSettings returns every setting key mapped to its value
// @Summary List settings
// @Produce json
// @Success 200 {object} map[string]interface{} "Flat key/value map"
// @Router /api/settings [get]
func (h settingsHandler) listSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "settings", err))
			return
		}

		values := make(map[string]json.RawMessage, len(settings))
		for _, setting := range settings {
			values[setting.Key] = setting.Value
		}

		h.responder.WriteJSON(w, values)
	}
}

// getSetting returns a single setting by key
// @Summary Get setting
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} settingValue "Key and value"
// @Failure 404 {object} ErrorResponse "Not Found - no such key"
// @Router /api/settings/{key} [get]
func (h settingsHandler) getSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		setting, err := h.settingRepo.FindByKey(key)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "setting", err))
			return
		}
		if setting == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("setting not found"))
			return
		}

		h.responder.WriteJSON(w, settingValue{Key: setting.Key, Value: setting.Value})
	}
}

// upsertSetting creates a setting or updates it in place, keyed by its unique key.
// Two concurrent upserts on one key race benignly: last write wins.
// @Summary Upsert setting
// @Accept json
// @Produce json
// @Success 200 {object} settingEnvelope "Created or updated setting"
// @Failure 400 {object} ErrorResponse "Bad Request - invalid payload"
// @Router /api/settings [post]
func (h settingsHandler) upsertSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.SettingUpsert
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode setting request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("key is required"))
			return
		}

		existing, err := h.settingRepo.FindByKey(payload.Key)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "setting", err))
			return
		}

		if existing != nil {
			payload.Apply(existing)
			if err := h.settingRepo.Save(existing); err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("update", "setting", err))
				return
			}

			h.responder.WriteJSON(w, settingEnvelope{
				Message: "setting updated successfully",
				Setting: existing,
			})
			return
		}

		setting := payload.Setting()
		if err := h.settingRepo.Add(&setting); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "setting", err))
			return
		}

		h.responder.WriteJSON(w, settingEnvelope{
			Message: "setting created successfully",
			Setting: &setting,
		})
	}
}

// deleteSetting deletes a setting by key
// @Summary Delete setting
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} MessageResponse "Confirmation message"
// @Failure 404 {object} ErrorResponse "Not Found - no such key"
// @Router /api/settings/{key} [delete]
func (h settingsHandler) deleteSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		deleted, err := h.settingRepo.DeleteByKey(key)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "setting", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("setting not found"))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "setting deleted successfully"})
	}
}
