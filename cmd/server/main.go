package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GeniusPlums/supreme-succotash/internal/config"
	"github.com/GeniusPlums/supreme-succotash/internal/database"
	"github.com/GeniusPlums/supreme-succotash/internal/handlers"
	"github.com/GeniusPlums/supreme-succotash/internal/middleware"
	"github.com/GeniusPlums/supreme-succotash/internal/services"
	"github.com/GeniusPlums/supreme-succotash/internal/ws"

	_ "github.com/GeniusPlums/supreme-succotash/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Opinion Contest API
// @version         1.0
// @description     API for the Opinion 5 prediction contest with CMS management
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
	if cfg.SeedDemoData {
		if err := database.Seed(db); err != nil {
			log.Printf("database seed failed, continuing anyway: %v", err)
		}
	}

	hub := ws.NewHub()

	authService := services.NewAuthService(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPassword)
	contestService := services.NewContestService(db)
	questionService := services.NewQuestionService(db)
	participantService := services.NewParticipantService(db, contestService)
	scoringService := services.NewScoringService(db)

	authHandler := handlers.NewAuthHandler(authService)
	contestHandler := handlers.NewContestHandler(contestService, questionService, participantService, hub)
	participantHandler := handlers.NewParticipantHandler(participantService, hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(scoringService)
	cmsContestHandler := handlers.NewCMSContestHandler(contestService)
	cmsQuestionHandler := handlers.NewCMSQuestionHandler(questionService)
	cmsScoringHandler := handlers.NewCMSScoringHandler(questionService, scoringService, hub)
	streamHandler := handlers.NewStreamHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/contest/:id", streamHandler.HandleContestStream)

	api := r.Group("/api")
	{
		api.GET("/contest", contestHandler.GetActiveContest)
		api.GET("/contest/:contestId/questions", contestHandler.GetQuestions)
		api.POST("/contest/:contestId/join", contestHandler.Join)
		api.GET("/contest/:contestId/leaderboard", leaderboardHandler.GetLeaderboard)

		api.POST("/participant/:participantId/selections", participantHandler.SubmitSelections)
		api.GET("/participant/session/:sessionId", participantHandler.GetBySession)

		cms := api.Group("/cms")
		{
			cms.POST("/login", authHandler.Login)

			authed := cms.Group("")
			authed.Use(middleware.AdminAuth(authService))
			{
				authed.GET("/verify", authHandler.Verify)

				authed.GET("/contests", cmsContestHandler.ListContests)
				authed.POST("/contests", cmsContestHandler.CreateContest)
				authed.PUT("/contests/:id", cmsContestHandler.UpdateContest)
				authed.DELETE("/contests/:id", cmsContestHandler.DeleteContest)

				authed.GET("/questions", cmsQuestionHandler.ListQuestions)
				authed.POST("/questions", cmsQuestionHandler.CreateQuestion)
				authed.PUT("/questions/:id", cmsQuestionHandler.UpdateQuestion)
				authed.DELETE("/questions/:id", cmsQuestionHandler.DeleteQuestion)

				authed.POST("/contest/:contestId/answers", cmsScoringHandler.UpdateAnswers)
				authed.POST("/contest/:contestId/calculate", cmsScoringHandler.Calculate)
			}
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("server starting on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("received %s, shutting down gracefully", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
