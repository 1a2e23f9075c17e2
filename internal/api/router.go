package api

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ncgames/games_go_server/config"
	"github.com/ncgames/games_go_server/internal/api/handler"
	"github.com/ncgames/games_go_server/internal/api/middleware"
	"github.com/ncgames/games_go_server/internal/pkg/response"
)

type Router struct {
	apiHandler      *handler.APIHandler
	categoryHandler *handler.CategoryHandler
	reviewHandler   *handler.ReviewHandler
	commentHandler  *handler.CommentHandler
	userHandler     *handler.UserHandler
	cfg             *config.Config
	logger          *zap.Logger
}

func NewRouter(
	apiHandler *handler.APIHandler,
	categoryHandler *handler.CategoryHandler,
	reviewHandler *handler.ReviewHandler,
	commentHandler *handler.CommentHandler,
	userHandler *handler.UserHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		apiHandler:      apiHandler,
		categoryHandler: categoryHandler,
		reviewHandler:   reviewHandler,
		commentHandler:  commentHandler,
		userHandler:     userHandler,
		cfg:             cfg,
		logger:          logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(ginzap.Ginzap(r.logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(r.logger, true))
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api")
	{
		api.GET("", r.apiHandler.Index)

		api.GET("/categories", r.categoryHandler.List)

		reviews := api.Group("/reviews")
		{
			reviews.GET("", r.reviewHandler.List)
			reviews.POST("", r.reviewHandler.Create)
			reviews.GET("/:review_id", r.reviewHandler.Get)
			reviews.PATCH("/:review_id", r.reviewHandler.PatchVotes)
			reviews.GET("/:review_id/comments", r.commentHandler.List)
			reviews.POST("/:review_id/comments", r.commentHandler.Create)
		}

		comments := api.Group("/comments")
		{
			comments.PATCH("/:comment_id", r.commentHandler.PatchVotes)
			comments.DELETE("/:comment_id", r.commentHandler.Delete)
		}

		users := api.Group("/users")
		{
			users.GET("", r.userHandler.List)
			users.GET("/:username", r.userHandler.Get)
		}
	}

	// catch-all for anything outside the route table
	engine.NoRoute(func(c *gin.Context) {
		response.Err(c, http.StatusNotFound, response.MsgRouteNotFound)
	})

	return engine
}
