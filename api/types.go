package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler   healthHandler
	authHandler     authHandler
	blogHandler     blogHandler
	serviceHandler  serviceHandler
	eventHandler    eventHandler
	settingsHandler settingsHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"blog not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// MessageResponse is the confirmation body returned by delete endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
