package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/console"
	"github.com/jtan/courtcast/go/internal/models"
)

// Terminal operator console: drives one match through the REST API with the
// same optimistic queue the dashboard uses.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	matchID, err := uuid.Parse(os.Getenv("MATCH_ID"))
	if err != nil {
		log.Fatal().Err(err).Msg("MATCH_ID must be a match uuid")
	}
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	token := os.Getenv("API_TOKEN")
	if token == "" {
		log.Fatal().Msg("API_TOKEN is required for write access")
	}

	client := console.NewAPIClient(apiURL, token, nil)
	c := console.New(client, clockwork.NewRealClock(), matchID, console.Config{
		OnChange: printScoreline,
		OnError: func(err error) {
			fmt.Fprintf(os.Stderr, "write failed, state rolled back: %v\n", err)
		},
	})
	defer c.Close()

	ctx := context.Background()
	if err := c.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load match")
	}

	fmt.Println("commands: +1 +2 -1 -2 | serve 1|2 | name 1|2 <name> | start stop break swap end | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := runCommand(ctx, c, strings.Fields(scanner.Text())); err != nil {
			if err == errQuit {
				return
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

var errQuit = fmt.Errorf("quit")

func runCommand(ctx context.Context, c *console.Console, args []string) error {
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "+1", "+2":
		return c.AddScore(ctx, int(args[0][1]-'0'), 1)
	case "-1", "-2":
		return c.AddScore(ctx, int(args[0][1]-'0'), -1)
	case "serve":
		player, err := playerArg(args)
		if err != nil {
			return err
		}
		return c.SetServing(ctx, player)
	case "name":
		player, err := playerArg(args)
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return fmt.Errorf("usage: name 1|2 <name>")
		}
		return c.SetPlayerName(ctx, player, strings.Join(args[2:], " "))
	case "court":
		if len(args) < 2 {
			return fmt.Errorf("usage: court <label>")
		}
		court := strings.Join(args[1:], " ")
		return c.UpdateDisplay(ctx, models.MatchPatch{Court: &court})
	case "start":
		return c.StartTimer(ctx)
	case "stop":
		return c.StopTimer(ctx)
	case "break":
		return c.ToggleBreak(ctx)
	case "swap":
		return c.SwapSides(ctx)
	case "end":
		return c.EndMatch(ctx)
	case "quit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func playerArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("player number required")
	}
	player, err := strconv.Atoi(args[1])
	if err != nil || (player != 1 && player != 2) {
		return 0, fmt.Errorf("player must be 1 or 2")
	}
	return player, nil
}

func printScoreline(m models.Match) {
	serve := func(s bool) string {
		if s {
			return "*"
		}
		return " "
	}
	fmt.Printf("[%s] %s%s %d - %d %s%s\n",
		m.Status,
		m.Player1.Name, serve(m.Player1.IsServing), m.Player1.Score,
		m.Player2.Score, serve(m.Player2.IsServing), m.Player2.Name)
}
