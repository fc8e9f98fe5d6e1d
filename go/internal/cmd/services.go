package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/jtan/courtcast/go/internal/auth"
	"github.com/jtan/courtcast/go/internal/db"
	"github.com/jtan/courtcast/go/internal/match"
	"github.com/jtan/courtcast/go/internal/sponsor"
	"github.com/jtan/courtcast/go/internal/tournament"
	"github.com/jtan/courtcast/go/internal/users"
)

type Services struct {
	Auth       *auth.Middleware
	Match      *match.Service
	Tournament *tournament.Service
	Sponsor    *sponsor.Service
	Users      *users.Service
}

func setupServices(database *sql.DB) *Services {
	// Database layer → repository layer → app layer → service layer
	clock := clockwork.NewRealClock()

	verifier := auth.NewVerifier(getEnv("JWT_SECRET", "dev-secret"))
	authMW := auth.NewMiddleware(verifier, auth.AllowAuthenticated)

	queries := db.New(database)

	// Users
	userRepo := users.NewRepository(queries)
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp, authMW, verifier, clock)

	// Tournaments
	tournamentRepo := tournament.NewRepository(queries)
	tournamentApp := tournament.NewApp(tournamentRepo)
	tournamentService := tournament.NewService(tournamentApp, authMW)

	// Sponsors
	sponsorRepo := sponsor.NewRepository(queries)
	sponsorApp := sponsor.NewApp(sponsorRepo)
	sponsorService := sponsor.NewService(sponsorApp, authMW)

	// Matches. The repository writes the outbox row inside the same
	// transaction as every match write.
	matchRepo := match.NewRepository(database)
	matchApp := match.NewApp(matchRepo, tournamentApp, userApp)
	matchService := match.NewService(matchApp, authMW)

	return &Services{
		Auth:       authMW,
		Match:      matchService,
		Tournament: tournamentService,
		Sponsor:    sponsorService,
		Users:      userService,
	}
}
