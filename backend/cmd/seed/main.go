package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"graphchat/backend/internal/graph"
	"graphchat/backend/pkg/config"
	"graphchat/backend/pkg/logger"
)

// Seeds a demo workspace: a handful of users, one channel everyone is in,
// and a first message so the notification fan-out has something to show.
func main() {
	userCount := flag.Int("users", 3, "Number of demo users to create")
	channelName := flag.String("channel", "general", "Name of the demo channel")
	wipe := flag.Bool("wipe", false, "Delete all existing data first")
	flag.Parse()

	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	if *wipe {
		session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			result, err := tx.Run(ctx, "MATCH (n) DETACH DELETE n", nil)
			if err != nil {
				return nil, err
			}
			return result.Consume(ctx)
		})
		session.Close(ctx)
		if err != nil {
			log.Fatal("Failed to wipe database", zap.Error(err))
		}
		log.Info("Database wiped")
	}

	repo := graph.NewRepository(driver)

	// Users are independent of each other; create them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < *userCount; i++ {
		name := fmt.Sprintf("demo-user-%d", i+1)
		g.Go(func() error {
			_, err := repo.CreateUser(gctx, name, "password", name+"@example.com", false)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("Failed to create demo users", zap.Error(err))
	}
	log.Info("Demo users created", zap.Int("count", *userCount))

	if _, err := repo.CreateChannel(ctx, *channelName); err != nil {
		log.Fatal("Failed to create demo channel", zap.Error(err))
	}

	// Ids are generated inside the repository; look them up by listing.
	channels, err := repo.ListChannels(ctx, graph.ChannelFilter{})
	if err != nil {
		log.Fatal("Failed to list channels", zap.Error(err))
	}
	var channelID string
	for _, ch := range channels {
		if ch.Name == *channelName {
			channelID = ch.ID
			break
		}
	}
	if channelID == "" {
		log.Fatal("Demo channel not found after creation")
	}

	users, err := repo.ListUsers(ctx, graph.UserFilter{})
	if err != nil {
		log.Fatal("Failed to list users", zap.Error(err))
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	if _, err := repo.AddChannelMembers(ctx, channelID, ids); err != nil {
		log.Fatal("Failed to add channel members", zap.Error(err))
	}

	if len(ids) > 0 {
		if _, err := repo.CreateMessage(ctx, "Welcome to "+*channelName, ids[0], channelID); err != nil {
			log.Fatal("Failed to create welcome message", zap.Error(err))
		}
	}

	log.Info("Seeding complete",
		zap.String("channel", channelID),
		zap.Int("users", len(ids)),
	)
}
