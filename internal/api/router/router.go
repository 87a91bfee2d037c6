package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/config"
	"github.com/jashmevada/skill-swap-platform/internal/api/handler"
	"github.com/jashmevada/skill-swap-platform/internal/api/middleware"
	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/pkg/jwt"
	"github.com/jashmevada/skill-swap-platform/pkg/redis"
)

// Setup builds the gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth (no token required; rate limited per IP).
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Everything else requires a valid access token.
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			users := authorized.Group("/users")
			{
				users.GET("/me", h.User.GetMe)
				users.PUT("/me", h.User.UpdateMe)
				users.POST("/me/skills/:skillId", h.User.AddSkill)
				users.DELETE("/me/skills/:skillId", h.User.RemoveSkill)
				users.GET("/search", h.User.Search)
				users.GET("/:id", h.User.GetByID)
				users.GET("/:id/skills", h.User.GetSkills)
				users.GET("/:id/feedback", h.User.GetFeedback)
			}

			skills := authorized.Group("/skills")
			{
				skills.GET("", h.Skill.List)
				skills.POST("", h.Skill.Create)
				skills.GET("/categories", h.Skill.Categories)
				skills.GET("/:id", h.Skill.GetByID)
			}

			swaps := authorized.Group("/swaps")
			{
				swaps.POST("", h.Swap.Create)
				swaps.GET("", h.Swap.List)
				swaps.GET("/:id", h.Swap.GetByID)
				swaps.PUT("/:id", h.Swap.Update)
				swaps.DELETE("/:id", h.Swap.Delete)
			}

			feedback := authorized.Group("/feedback")
			{
				feedback.POST("", h.Feedback.Create)
			}

			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				admin.GET("/users", h.Admin.ListUsers)
				admin.PUT("/users/:id/ban", h.Admin.BanUser)
				admin.PUT("/users/:id/unban", h.Admin.UnbanUser)

				admin.GET("/skills/pending", h.Admin.ListPendingSkills)
				admin.PUT("/skills/:id/approve", h.Admin.ApproveSkill)
				admin.PUT("/skills/:id/reject", h.Admin.RejectSkill)
				admin.DELETE("/skills/:id", h.Admin.DeleteSkill)

				admin.GET("/swaps", h.Admin.ListSwaps)
				admin.GET("/stats", h.Admin.Stats)

				admin.POST("/messages", h.Admin.CreateMessage)
				admin.GET("/messages", h.Admin.ListMessages)
				admin.PUT("/messages/:id/toggle", h.Admin.ToggleMessage)

				admin.GET("/reports/users", h.Admin.UserActivityReport)
				admin.GET("/reports/feedback", h.Admin.FeedbackReport)
				admin.GET("/export/swaps", h.Admin.ExportSwaps)
			}
		}
	}

	return r
}
