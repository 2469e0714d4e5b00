package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"fragenspiel/internal/service"
	"fragenspiel/internal/transport/rest/handler"
	"fragenspiel/internal/transport/rest/middleware"
	"fragenspiel/internal/transport/ws"
)

// Container holds all dependencies for the router. The persistent-game
// services are nil in demo-only mode, which leaves their routes
// unregistered.
type Container struct {
	AuthService      *service.AuthService
	DemoService      *service.DemoService
	GameService      *service.GameService
	CharacterService *service.CharacterService
	QuestionService  *service.QuestionService
	AdminService     *service.AdminService
	WSHub            *ws.Hub

	// CORSAllowedOrigins is the Access-Control-Allow-Origin value; empty
	// means allow all.
	CORSAllowedOrigins string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSAllowedOrigins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Demo routes (public; the session token is the capability)
	demoHandler := handler.NewDemoHandler(c.DemoService)
	v1.HandleFunc("/demo/start", demoHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/demo/validate/{token}", demoHandler.Validate).Methods("GET", "OPTIONS")
	v1.HandleFunc("/demo/{token}/characters", demoHandler.Characters).Methods("GET", "OPTIONS")
	v1.HandleFunc("/demo/{token}/questions", demoHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/demo/{token}/question/{characterId}", demoHandler.QuestionForCharacter).Methods("GET", "OPTIONS")
	v1.HandleFunc("/demo/{token}/answer", demoHandler.RecordAnswer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/demo/{token}/status", demoHandler.Status).Methods("GET", "OPTIONS")
	v1.HandleFunc("/demo/{token}/reset/{characterId}", demoHandler.ResetCharacter).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/demo/{token}/reset-all", demoHandler.ResetAll).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/demo/{token}/answers/{characterId}", demoHandler.CharacterAnswers).Methods("GET", "OPTIONS")

	// WebSocket status feed
	if c.WSHub != nil {
		wsHandler := ws.NewHandler(c.WSHub, c.DemoService)
		v1.HandleFunc("/ws/demo/{token}", wsHandler.Watch).Methods("GET")
	}

	// Everything below needs the database
	if c.GameService == nil {
		return r
	}

	authHandler := handler.NewAuthHandler(c.AuthService)
	gameHandler := handler.NewGameHandler(c.GameService)
	characterHandler := handler.NewCharacterHandler(c.CharacterService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	adminHandler := handler.NewAdminHandler(c.AdminService)

	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Persistent game routes (public, like the demo)
	v1.HandleFunc("/game/question/{characterId}", gameHandler.QuestionForCharacter).Methods("GET", "OPTIONS")
	v1.HandleFunc("/game/answer", gameHandler.RecordAnswer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/game/status", gameHandler.Status).Methods("GET", "OPTIONS")
	v1.HandleFunc("/game/reset/{characterId}", gameHandler.ResetCharacter).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/game/reset-all", gameHandler.ResetAll).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/game/answers/{characterId}", gameHandler.CharacterAnswers).Methods("GET", "OPTIONS")

	// Catalog reads are public
	v1.HandleFunc("/characters", characterHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/characters/{id}", characterHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/{id}", questionHandler.Get).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	authMW := middleware.NewAuthMiddleware(c.AuthService)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/characters", characterHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/characters/{id}", characterHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/characters/{id}", characterHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/questions", questionHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/questions/{id}", questionHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/questions/{id}", questionHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/admin/stats", adminHandler.Stats).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/clear-db", adminHandler.ClearDatabase).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/admin/preload", adminHandler.Preload).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/admin/import", adminHandler.Import).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
