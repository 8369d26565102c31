package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Read endpoints and the auth bootstrap
// flow are public; mutating endpoints sit behind the bearer-token guard.
func setupRoutes(r chi.Router, handlers *routeHandlers, guard authMiddleware, uploadsDir string) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/health", handlers.healthHandler.check())

		r.Get("/api/auth/check-setup", handlers.authHandler.checkSetup())
		r.Post("/api/auth/setup", handlers.authHandler.setup())
		r.Post("/api/auth/login", handlers.authHandler.login())

		r.Get("/api/blogs", handlers.blogHandler.listBlogs())
		r.Get("/api/blogs/{blogID}", handlers.blogHandler.getBlog())

		r.Get("/api/services", handlers.serviceHandler.listServices())

		r.Get("/api/events", handlers.eventHandler.listEvents())
		r.Get("/api/events/{eventID}", handlers.eventHandler.getEvent())

		r.Get("/api/settings", handlers.settingsHandler.listSettings())
		r.Get("/api/settings/{key}", handlers.settingsHandler.getSetting())
	})

	// Guarded routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(guard.authenticate)

		r.Post("/api/blogs", handlers.blogHandler.createBlog())
		r.Put("/api/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/api/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		r.Post("/api/services", handlers.serviceHandler.createService())
		r.Put("/api/services/{serviceID}", handlers.serviceHandler.updateService())
		r.Delete("/api/services/{serviceID}", handlers.serviceHandler.deleteService())

		r.Post("/api/events", handlers.eventHandler.createEvent())
		r.Put("/api/events/{eventID}", handlers.eventHandler.updateEvent())
		r.Delete("/api/events/{eventID}", handlers.eventHandler.deleteEvent())

		r.Post("/api/settings", handlers.settingsHandler.upsertSetting())
		r.Delete("/api/settings/{key}", handlers.settingsHandler.deleteSetting())
	})

	// Uploaded assets served unauthenticated from local disk
	fileServer(r, "/uploads", http.Dir(uploadsDir))
}

// fileServer mounts a static file handler under path.
func fileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("fileServer does not permit URL parameters")
	}
	fs := http.StripPrefix(path, http.FileServer(root))
	r.Get(path+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
