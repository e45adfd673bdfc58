package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/rwidjaja/contactbook/internal/config"
	"github.com/rwidjaja/contactbook/internal/handlers"
	"github.com/rwidjaja/contactbook/internal/service"
	"github.com/rwidjaja/contactbook/internal/store/sqlstore"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	st, err := sqlstore.New(cfg.DBPath)
	if err != nil {
		slog.Error("open store", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer st.Close()

	users := service.NewUserService(st, cfg.TokenTTL, cfg.BcryptCost)
	contacts := service.NewContactService(st)
	addresses := service.NewAddressService(st)

	authHandler := &handlers.AuthHandler{Users: users}
	userHandler := &handlers.UserHandler{Users: users}
	contactHandler := &handlers.ContactHandler{Contacts: contacts}
	addressHandler := &handlers.AddressHandler{Addresses: addresses}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	// Public endpoints
	r.HandleFunc("/api/user/register", userHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Everything below requires a valid X-API-TOKEN
	authed := r.NewRoute().Subrouter()
	authed.Use(handlers.Auth(users))

	authed.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("DELETE")
	authed.HandleFunc("/api/user/info", userHandler.Info).Methods("GET")
	authed.HandleFunc("/api/user/update", userHandler.Update).Methods("PATCH")

	authed.HandleFunc("/api/contacts", contactHandler.Create).Methods("POST")
	authed.HandleFunc("/api/contacts", contactHandler.Search).Methods("GET")
	authed.HandleFunc("/api/contacts/{id}", contactHandler.Get).Methods("GET")
	authed.HandleFunc("/api/contacts/{id}", contactHandler.Update).Methods("PUT")
	authed.HandleFunc("/api/contacts/{id}", contactHandler.Delete).Methods("DELETE")

	authed.HandleFunc("/api/contacts/{contact_id}/addresses", addressHandler.Create).Methods("POST")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses", addressHandler.List).Methods("GET")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses/{address_id}", addressHandler.Get).Methods("GET")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses/{address_id}", addressHandler.Update).Methods("PUT")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses/{address_id}", addressHandler.Delete).Methods("DELETE")

	slog.Info("starting server", "addr", cfg.Addr, "db", cfg.DBPath)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
