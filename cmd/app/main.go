package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"google.golang.org/api/option"

	"github.com/RodrigoFK06/rapiditos/cmd"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/firestoredb"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/memstore"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store := buildStore(configs)

	root, err := cmd.NewCompositionRoot(configs, store, logger)
	if err != nil {
		log.Fatalf("failed to build composition root: %v", err)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is a local development convenience; deployed environments set
	// real environment variables
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		StoreDriver:          envOrDefault("STORE_DRIVER", "firestore"),
		FirestoreProjectID:   os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCredentials: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func buildStore(configs cmd.Config) ports.DocumentStore {
	switch configs.StoreDriver {
	case "memory":
		return memstore.NewStore()
	case "firestore":
		var opts []option.ClientOption
		if configs.FirestoreCredentials != "" {
			opts = append(opts, option.WithCredentialsFile(configs.FirestoreCredentials))
		}

		client, err := firestore.NewClient(context.Background(), configs.FirestoreProjectID, opts...)
		if err != nil {
			log.Fatalf("failed to connect to firestore: %v", err)
		}

		store, err := firestoredb.NewStore(client)
		if err != nil {
			log.Fatalf("failed to build firestore store: %v", err)
		}
		return store
	default:
		log.Fatalf("unknown STORE_DRIVER %q (want firestore or memory)", configs.StoreDriver)
		return nil
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
