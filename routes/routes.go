package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"boardinghouse-backend/controllers"
	"boardinghouse-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	pc *controllers.PropertyController,
	rc *controllers.PropertyRuleController,
	pub *controllers.PublicPropertyController,
	jwtSecret string,
	uploadsDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", uploadsDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "x-auth-token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/profile", middleware.Auth(jwtSecret), ac.Profile)
		}

		// Owner-scoped, all behind the bearer token.
		properties := api.Group("/properties", middleware.Auth(jwtSecret))
		{
			properties.GET("", pc.GetUserProperties)
			properties.GET("/:id", pc.GetPropertyByID)
			properties.POST("", pc.CreateProperty)
			properties.PUT("/:id", pc.UpdateProperty)
			properties.DELETE("/:id", pc.DeleteProperty)
			properties.DELETE("/:id/images/:imageName", pc.DeletePropertyImage)

			properties.GET("/:id/rules", rc.GetRules)
			properties.POST("/:id/rules", rc.AddRule)
			properties.POST("/:id/rules/bulk", rc.AddRules)
			properties.PUT("/:id/rules/:ruleId", rc.UpdateRule)
			properties.DELETE("/:id/rules/:ruleId", rc.DeleteRule)
			properties.DELETE("/:id/rules", rc.DeleteAllRules)
		}

		// Anonymous read-only surface; available listings only.
		public := api.Group("/public")
		{
			public.GET("/properties/search", pub.SearchProperties)
			public.GET("/properties/cities", pub.GetCities)
			public.GET("/properties/:id", pub.GetPropertyByID)
		}
	}

	return r
}
