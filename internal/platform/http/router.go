package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you-rent/api/internal/business/rating"
	"github.com/you-rent/api/internal/platform/cache"
	"github.com/you-rent/api/internal/platform/storage"
	"github.com/you-rent/api/internal/repository"
	"github.com/you-rent/api/pkg/model"
)

const sessionKey = "session"

// Router wires HTTP handlers.
type Router struct {
	estates   *repository.EstateRepository
	criterias *repository.CriteriaRepository
	comments  *repository.CommentRepository
	users     *repository.UserRepository
	requests  *repository.RequestRepository
	ratings   *rating.Service
	files     *storage.Client
	snapshots *cache.Snapshots
	log       *slog.Logger
	origins   string
}

// Deps bundles the collaborators the router needs.
type Deps struct {
	Estates   *repository.EstateRepository
	Criterias *repository.CriteriaRepository
	Comments  *repository.CommentRepository
	Users     *repository.UserRepository
	Requests  *repository.RequestRepository
	Ratings   *rating.Service
	Files     *storage.Client
	Snapshots *cache.Snapshots
	Log       *slog.Logger
}

func NewRouter(deps Deps, allowedOrigins string) *gin.Engine {
	r := &Router{
		estates:   deps.Estates,
		criterias: deps.Criterias,
		comments:  deps.Comments,
		users:     deps.Users,
		requests:  deps.Requests,
		ratings:   deps.Ratings,
		files:     deps.Files,
		snapshots: deps.Snapshots,
		log:       deps.Log,
		origins:   allowedOrigins,
	}
	if r.log == nil {
		r.log = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), r.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/routes", r.listRoutes)

	api := router.Group("/api")
	api.Use(r.sessionMiddleware())
	{
		api.GET("/estates", r.listEstates)
		api.POST("/estates", r.addEstate)
		api.GET("/estates/:id", r.getEstate)
		api.PUT("/estates/:id", r.updateEstate)
		api.DELETE("/estates/:id", r.deleteEstate)
		api.POST("/estates/:id/pictures", r.addEstatePicture)
		api.DELETE("/estates/:id/pictures", r.removeEstatePicture)

		api.GET("/users/:id", r.getUser)
		api.PUT("/users/:id", r.updateUser)
		api.GET("/users/:id/estates", r.listUserEstates)

		api.GET("/users/:id/criterias", r.listCriterias)
		api.POST("/users/:id/criterias", r.addCriteria)
		api.GET("/users/:id/criterias/:criteriaId", r.getCriteria)
		api.PUT("/users/:id/criterias/:criteriaId", r.updateCriteria)
		api.DELETE("/users/:id/criterias/:criteriaId", r.deleteCriteria)

		api.GET("/comments", r.listComments)
		api.POST("/comments", r.addComment)
		api.PUT("/comments/:id", r.updateComment)
		api.DELETE("/comments/:id", r.deleteComment)

		api.GET("/requests", r.listRequests)
		api.POST("/requests", r.addRequest)
		api.PUT("/requests/:id", r.updateRequest)
		api.GET("/requests/:id/messages", r.listMessages)
		api.POST("/requests/:id/messages", r.addMessage)

		api.POST("/files", r.uploadFile)
		api.GET("/files/url", r.resolveFileURL)
		api.DELETE("/files", r.deleteFile)
	}

	return router
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(r.origins, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := "*"
		for _, o := range trimmed {
			if o == "*" || o == origin {
				allowed = origin
				break
			}
		}
		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-Id, X-User-Photo")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// sessionMiddleware builds the per-request session from headers set by the
// auth proxy. The session value is passed down explicitly; there is no
// process-wide current user.
func (r *Router) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}
		c.Set(sessionKey, model.Session{
			UserID:   userID,
			PhotoURL: strings.TrimSpace(c.GetHeader("X-User-Photo")),
		})
		c.Next()
	}
}

func session(c *gin.Context) model.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(model.Session); ok {
			return s
		}
	}
	return model.Session{}
}

// respondError maps repository errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
