package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sudha-1290/Quiz-Master-V1/config"
	"github.com/sudha-1290/Quiz-Master-V1/handlers"
	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/middleware"
)

func init() {
	// Load .env file outside of deployed environments
	if os.Getenv("APP_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.Connect(); err != nil {
		logger.L().Fatalw("failed to connect database", "err", err)
	}

	DBHandler := &handlers.DBHandler{DB: config.Database}
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", DBHandler.Register)
	mux.HandleFunc("POST /api/auth/login", DBHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", DBHandler.Logout)
	mux.HandleFunc("GET /api/auth/me", middleware.RequireUser(DBHandler.Me))
	mux.HandleFunc("POST /api/auth/reset-request", DBHandler.RequestPasswordReset)
	mux.HandleFunc("POST /api/auth/reset", DBHandler.ResetPassword)
	mux.HandleFunc("PUT /api/users/me", middleware.RequireUser(DBHandler.UpdateProfile))
	mux.HandleFunc("PUT /api/users/me/password", middleware.RequireUser(DBHandler.ChangePassword))

	// Subjects
	mux.HandleFunc("GET /api/subjects", middleware.RequireUser(DBHandler.ListSubjects))
	mux.HandleFunc("GET /api/subjects/{subjectID}", middleware.RequireUser(DBHandler.GetSubject))
	mux.HandleFunc("POST /api/subjects", middleware.RequireAdmin(DBHandler.CreateSubject))
	mux.HandleFunc("PUT /api/subjects/{subjectID}", middleware.RequireAdmin(DBHandler.UpdateSubject))
	mux.HandleFunc("DELETE /api/subjects/{subjectID}", middleware.RequireAdmin(DBHandler.DeleteSubject))

	// Quizzes
	mux.HandleFunc("GET /api/subjects/{subjectID}/quizzes", middleware.RequireUser(DBHandler.ListSubjectQuizzes))
	mux.HandleFunc("POST /api/subjects/{subjectID}/quizzes", middleware.RequireAdmin(DBHandler.CreateQuiz))
	mux.HandleFunc("GET /api/quizzes/search", middleware.RequireUser(DBHandler.SearchQuizzes))
	mux.HandleFunc("GET /api/quizzes/{quizID}", middleware.RequireUser(DBHandler.GetQuiz))
	mux.HandleFunc("PUT /api/quizzes/{quizID}", middleware.RequireAdmin(DBHandler.UpdateQuiz))
	mux.HandleFunc("DELETE /api/quizzes/{quizID}", middleware.RequireAdmin(DBHandler.DeleteQuiz))

	// Questions
	mux.HandleFunc("GET /api/quizzes/{quizID}/questions", middleware.RequireAdmin(DBHandler.ListQuestions))
	mux.HandleFunc("POST /api/quizzes/{quizID}/questions", middleware.RequireAdmin(DBHandler.AddQuestion))
	mux.HandleFunc("PUT /api/questions/{questionID}", middleware.RequireAdmin(DBHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /api/questions/{questionID}", middleware.RequireAdmin(DBHandler.DeleteQuestion))

	// Attempts
	mux.HandleFunc("POST /api/quizzes/{quizID}/attempts", middleware.RequireUser(DBHandler.SubmitQuiz))
	mux.HandleFunc("GET /api/attempts/{scoreID}", middleware.RequireUser(DBHandler.GetAttempt))
	mux.HandleFunc("GET /api/attempts/{scoreID}/review", middleware.RequireUser(DBHandler.ReviewAttempt))

	// Learner views
	mux.HandleFunc("GET /api/dashboard", middleware.RequireUser(DBHandler.UserDashboard))
	mux.HandleFunc("GET /api/progress", middleware.RequireUser(DBHandler.GetProgress))
	mux.HandleFunc("GET /api/leaderboard", middleware.RequireUser(DBHandler.GetLeaderboard))
	mux.HandleFunc("GET /api/achievements", middleware.RequireUser(DBHandler.ListAchievements))
	mux.HandleFunc("GET /api/study-materials", middleware.RequireUser(DBHandler.ListStudyMaterials))
	mux.HandleFunc("GET /api/export/results", middleware.RequireUser(DBHandler.ExportResults))

	// Study materials (admin)
	mux.HandleFunc("POST /api/study-materials", middleware.RequireAdmin(DBHandler.CreateStudyMaterial))
	mux.HandleFunc("DELETE /api/study-materials/{materialID}", middleware.RequireAdmin(DBHandler.DeleteStudyMaterial))

	// Admin views
	mux.HandleFunc("GET /api/admin/dashboard", middleware.RequireAdmin(DBHandler.AdminDashboard))
	mux.HandleFunc("GET /api/admin/analytics", middleware.RequireAdmin(DBHandler.Analytics))
	mux.HandleFunc("GET /api/admin/search", middleware.RequireAdmin(DBHandler.AdminSearch))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	logger.L().Infow("listening", "addr", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		logger.L().Fatalw("server stopped", "err", err)
	}
}
