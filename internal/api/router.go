package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohits-web03/clubhouse/docs"
	"github.com/rohits-web03/clubhouse/internal/api/handlers"
	"github.com/rohits-web03/clubhouse/internal/api/middleware"
	"github.com/rohits-web03/clubhouse/internal/logging"
)

// SetupRouter wires every route. The identity middleware runs on all of
// them; each handler branches on Anonymous itself.
func SetupRouter(h *handlers.Handler, resolver middleware.IdentityResolver, corsOptions cors.Options, log logging.Logger) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(corsOptions)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("GET /login", h.ShowLogin)
	mainMux.HandleFunc("POST /login", h.LoginUser)
	mainMux.HandleFunc("GET /signup", h.ShowSignup)
	mainMux.HandleFunc("POST /signup", h.RegisterUser)
	mainMux.HandleFunc("POST /logout", h.Logout)

	mainMux.HandleFunc("GET /auth/google/login", h.HandleGoogleLogin)
	mainMux.HandleFunc("GET /auth/google/callback", h.HandleGoogleCallback)

	// ---------- IDENTITY-GATED ROUTES ----------
	mainMux.HandleFunc("GET /members-area", h.ShowMembersArea)
	mainMux.HandleFunc("POST /members-area", h.SubmitCodeWord)

	mainMux.HandleFunc("GET /board", h.ShowBoard)
	mainMux.HandleFunc("POST /board", h.PostMessage)
	mainMux.HandleFunc("POST /board/archive", h.ExportArchive)

	log.Info(context.Background(), "router initialized")
	handler := middleware.Identify(resolver, log)(mainMux)
	handler = c.Handler(handler)
	handler = middleware.Logger(log)(handler)
	return handler
}
