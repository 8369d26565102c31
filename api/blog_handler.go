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

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// blogEnvelope wraps a blog record in the create/update response
type blogEnvelope struct {
	Message string       `json:"message"`
	Blog    *models.Blog `json:"blog"`
}

// listBlogs retrieves blogs matching the optional query filters
// @Summary List blogs
// @Description Retrieves blogs, filtered by category, free-text search and published flag, newest first
// @Tags Blogs
// @Produce json
// @Param category query string false "Exact category; 'all' disables the filter"
// @Param search query string false "Case-insensitive substring over title/excerpt/content/tags"
// @Param published query string false "Only published entries when 'true' (default)"
// @Success 200 {array} models.Blog "List of blogs"
// @Router /api/blogs [get]
func (h blogHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := database.BlogFilter{
			Search:        query.Get("search"),
			PublishedOnly: onlyVisible(query.Get("published")),
		}
		if category := query.Get("category"); category != "" && !isCategorySentinel(category) {
			filter.Category = category
		}

		blogs, err := h.blogRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// getBlog retrieves a single blog by ID
// @Summary Get blog
// @Description Retrieves a single blog by its identifier
// @Tags Blogs
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} models.Blog "Blog details"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed blogID"
// @Failure 404 {object} ErrorResponse "Not Found - no such blog"
// @Router /api/blogs/{blogID} [get]
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID := chi.URLParam(r, "blogID")
		if _, err := uuid.Parse(blogID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blog ID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// createBlog creates a new blog
// @Summary Create blog
// @Description Creates a new blog; defaults applied for omitted optional fields
// @Tags Blogs
// @Accept json
// @Produce json
// @Success 201 {object} blogEnvelope "Created blog"
// @Failure 400 {object} ErrorResponse "Bad Request - invalid payload"
// @Router /api/blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.BlogCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		required := []struct{ field, value string }{
			{"title", payload.Title},
			{"excerpt", payload.Excerpt},
			{"content", payload.Content},
			{"author", payload.Author},
			{"category", payload.Category},
		}
		for _, req := range required {
			if req.value == "" {
				h.responder.WriteError(w, errs.NewBadRequestError(req.field+" is required"))
				return
			}
		}

		blog := payload.Blog()
		if err := h.blogRepo.Add(&blog); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "blog", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, blogEnvelope{
			Message: "blog created successfully",
			Blog:    &blog,
		})
	}
}

// updateBlog applies a partial update to an existing blog
// @Summary Update blog
// @Description Merges the present fields into an existing blog; omitted fields are untouched
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} blogEnvelope "Updated blog"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed blogID or payload"
// @Failure 404 {object} ErrorResponse "Not Found - no such blog"
// @Router /api/blogs/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID := chi.URLParam(r, "blogID")
		if _, err := uuid.Parse(blogID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blog ID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		var payload models.BlogUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		payload.Apply(blog)
		if err := h.blogRepo.Save(blog); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "blog", err))
			return
		}

		h.responder.WriteJSON(w, blogEnvelope{
			Message: "blog updated successfully",
			Blog:    blog,
		})
	}
}

// deleteBlog deletes a blog by ID
// @Summary Delete blog
// @Description Deletes a blog by its identifier
// @Tags Blogs
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} MessageResponse "Confirmation message"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed blogID"
// @Failure 404 {object} ErrorResponse "Not Found - no such blog"
// @Router /api/blogs/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID := chi.URLParam(r, "blogID")
		if _, err := uuid.Parse(blogID); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blog ID"))
			return
		}

		deleted, err := h.blogRepo.Delete(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "blog", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "blog deleted successfully"})
	}
}
