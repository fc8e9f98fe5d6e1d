package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(services *Services, config *Config) *http.Server {
	router := mux.NewRouter()

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins:   []string{"*"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	registerServices(router, services)
	setupConfigEndpoint(router, config)
	setupHealthCheck(router)

	// Session resolution runs for every route; enforcement happens per
	// route inside the services.
	handler := c.Handler(services.Auth.Resolve(router))

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", getEnv("PORT", "8080")),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func registerServices(router *mux.Router, services *Services) {
	services.Match.RegisterRoutes(router)
	services.Tournament.RegisterRoutes(router)
	services.Sponsor.RegisterRoutes(router)
	services.Users.RegisterRoutes(router)
}

// setupConfigEndpoint publishes the display tunables so the dashboard and
// overlay bundle read the same timing the backend was deployed with.
func setupConfigEndpoint(router *mux.Router, config *Config) {
	router.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]interface{}{
			"console": map[string]int{
				"debounceMs": config.Console.DebounceMs,
				"maxRetries": config.Console.MaxRetries,
				"backoffMs":  config.Console.BackoffMs,
			},
			"overlay": map[string]interface{}{
				"carouselIntervalSeconds": config.Overlay.CarouselIntervalSeconds,
			},
		}); err != nil {
			log.Error().Err(err).Msg("failed to write config response")
		}
	}).Methods(http.MethodGet)
}

func setupHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
