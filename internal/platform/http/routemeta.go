package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you-rent/api/pkg/model"
)

// routeTable is the navigation configuration the client renders from: page
// title and tab-bar visibility per route, instead of the client deriving
// both from the current path imperatively.
var routeTable = []model.RouteMeta{
	{Path: "/login", Title: "Sign in", ChromeVisible: false},
	{Path: "/register", Title: "Create account", ChromeVisible: false},
	{Path: "/estates", Title: "Estates", ChromeVisible: true},
	{Path: "/estate/:id", Title: "Estate", ChromeVisible: false},
	{Path: "/requests", Title: "Requests", ChromeVisible: true},
	{Path: "/chat/:id", Title: "Chat", ChromeVisible: false},
	{Path: "/profile", Title: "Profile", ChromeVisible: true},
	{Path: "/profile/:id", Title: "Profile", ChromeVisible: false},
}

func (r *Router) listRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": routeTable})
}
