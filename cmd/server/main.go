package main

import (
	"log"
	"strconv"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/config"
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/database"
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/handlers"
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/middleware"
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title           CampusVerse Quiz API
// @version         1.0
// @description     Campus quiz lifecycle: windowed quizzes, single attempts, scoring, AI credits
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	initialCredits, _ := strconv.Atoi(cfg.InitialCredits)
	if initialCredits < 0 {
		initialCredits = 0
	}

	creditService := services.NewCreditService(db)
	authService := services.NewAuthService(db, creditService, cfg.JWTSecret, initialCredits)
	quizService := services.NewQuizService(db)
	scoringService := services.NewScoringService()
	attemptService := services.NewAttemptService(db, scoringService)
	resultsService := services.NewResultsService(db)
	roadmapService := services.NewRoadmapService(db, creditService, cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel)

	if !roadmapService.IsAvailable() {
		log.Println("AI_API_KEY not set, roadmap generation disabled")
	}

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService, authService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	resultsHandler := handlers.NewResultsHandler(resultsService)
	creditHandler := handlers.NewCreditHandler(creditService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		authed := api.Group("")
		authed.Use(middleware.JWTAuth(authService))
		{
			faculty := middleware.RequireRole(models.RoleFaculty)
			student := middleware.RequireRole(models.RoleStudent)

			quizzes := authed.Group("/quizzes")
			{
				quizzes.GET("", faculty, quizHandler.ListQuizzes)
				quizzes.POST("", faculty, quizHandler.CreateQuiz)
				quizzes.GET("/available", student, quizHandler.ListAvailable)
				quizzes.POST("/verify-code", student, quizHandler.VerifyCode)
				quizzes.GET("/:id", faculty, quizHandler.GetQuiz)
				quizzes.DELETE("/:id", faculty, quizHandler.DeleteQuiz)
				quizzes.POST("/:id/cancel", faculty, quizHandler.CancelQuiz)
				quizzes.GET("/:id/results", faculty, resultsHandler.QuizResults)
				quizzes.GET("/:id/take", student, quizHandler.TakeQuiz)
				quizzes.POST("/:id/attempt", student, attemptHandler.SubmitAttempt)
			}

			authed.GET("/students/me/quiz-attempts", student, resultsHandler.MyAttempts)
			authed.GET("/credits", creditHandler.GetCredits)

			ai := authed.Group("/ai")
			{
				ai.POST("/roadmap", roadmapHandler.GenerateRoadmap)
				ai.GET("/roadmaps", roadmapHandler.ListRoadmaps)
			}
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
