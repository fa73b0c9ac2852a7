package main

import (
	"log"
	"net/http"
	"os"

	"github.com/BozorgmehrZia/quiz-peach-backend/config"
	"github.com/BozorgmehrZia/quiz-peach-backend/handlers"
	"github.com/BozorgmehrZia/quiz-peach-backend/middleware"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"
	"github.com/BozorgmehrZia/quiz-peach-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	tagService := services.NewTagService(tagRepo)
	questionService := services.NewQuestionService(questionRepo, tagRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo, userRepo)
	leaderboardService := services.NewLeaderboardService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	tagHandler := handlers.NewTagHandler(tagService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// Setup router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Leaderboard (public read path)
		v1.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Tags
			tags := protected.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
			}

			// Questions
			questions := protected.Group("/questions")
			{
				questions.POST("", questionHandler.CreateQuestion)
				questions.GET("", questionHandler.GetQuestions)
				questions.GET("/:id", questionHandler.GetQuestion)
				questions.POST("/:id/related", questionHandler.RelateQuestion)
				questions.GET("/:id/related", questionHandler.GetRelatedQuestions)
			}

			// Answers
			answers := protected.Group("/answers")
			{
				answers.POST("", answerHandler.SubmitAnswer)
				answers.GET("", answerHandler.GetMyAnswers)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
