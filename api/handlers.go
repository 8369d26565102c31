package api

import (
	"time"

	"github.com/sncblog/backend/auth"
	"github.com/sncblog/backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, tokens *auth.TokenIssuer, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:   newHealthHandler(startupTime),
		authHandler:     newAuthHandler(database.AdminRepo(), tokens),
		blogHandler:     newBlogHandler(database.BlogRepo()),
		serviceHandler:  newServiceHandler(database.ServiceRepo()),
		eventHandler:    newEventHandler(database.EventRepo()),
		settingsHandler: newSettingsHandler(database.SettingRepo()),
	}
}

// isCategorySentinel reports whether a category query value disables category
// filtering. The frontend sends "全部" ("all") for the catch-all tab.
func isCategorySentinel(category string) bool {
	return category == "all" || category == "全部"
}

// onlyVisible interprets the published/active query parameter: the filter is
// applied only when the value is the literal string "true", which is also the
// default when the parameter is absent.
func onlyVisible(param string) bool {
	if param == "" {
		param = "true"
	}
	return param == "true"
}
