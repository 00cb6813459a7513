// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/JainamOswal18/TheBetterHack2025/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/JainamOswal18/TheBetterHack2025/internal/auth"
	"github.com/JainamOswal18/TheBetterHack2025/internal/controller/candidate"
	"github.com/JainamOswal18/TheBetterHack2025/internal/controller/jobpost"
	reviewctl "github.com/JainamOswal18/TheBetterHack2025/internal/controller/review"
	"github.com/JainamOswal18/TheBetterHack2025/internal/middleware"
	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
)

// RegisterRoutes will register each http endpoint routes to bound APIServer instance
func (s *APIServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	googleOauth := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_AUTH_CLIENT"),
		ClientSecret: os.Getenv("GOOGLE_AUTH_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: os.Getenv("OAUTH_REDIRECT_URL"),
	}

	gAuth := auth.NewOauthLoginHandler(s.DB, googleOauth, "https://www.googleapis.com/oauth2/v2/userinfo")
	lAuth := auth.NewLocalAuthHandler(s.DB)
	postings := jobpost.NewPostingController(s.DB)
	candidates := candidate.NewCandidateController(s.DB, s.Storage, s.Scorer)
	reviews := reviewctl.NewReviewController(s.DB, s.Workbench)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("google", gAuth.ReviewerGoogleLoginHandler)
			authRoute.GET("google/callback", gAuth.Callback)
			authRoute.POST("login", lAuth.LocalLoginHandler)
		}

		// Public routes: job catalog and application intake
		v1.GET("/jobs", postings.GetPostings)
		v1.GET("/jobs/:id", postings.GetPostingByID)
		v1.POST("/application",
			middleware.EnvRateLimitMiddleware(),
			middleware.SizeLimit(10<<20),
			candidates.SubmitApplication)

		// Reviewer routes
		needReviewer := v1.Group("")
		{
			needReviewer.Use(middleware.RequireAuth(s.DB), middleware.CheckRole(model.RoleAdmin))
			needReviewer.GET("/candidates", reviews.GetCandidates)
			needReviewer.POST("/candidates/:id/accept", reviews.AcceptCandidate)
			needReviewer.DELETE("/candidates/:id", reviews.RejectCandidate)
			needReviewer.GET("/candidate/:id/resume", candidates.DownloadResume)
			needReviewer.PATCH("/candidate/:id/scores", candidates.AttachScores)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *APIServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *APIServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
