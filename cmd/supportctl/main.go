// supportctl is the terminal client for the student support service:
// sign in, browse campus resources, manage community events and posts,
// and talk to the wellness assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/student-support/supportctl/internal/cli"
	"github.com/student-support/supportctl/internal/core/ports"
	"github.com/student-support/supportctl/internal/core/service"
	"github.com/student-support/supportctl/internal/infrastructure/backend"
	"github.com/student-support/supportctl/internal/infrastructure/config"
	"github.com/student-support/supportctl/internal/infrastructure/storage"
	"github.com/student-support/supportctl/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "supportctl:", err)
		return 1
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "supportctl:", err)
		return 1
	}
	defer closeStore()

	session := service.NewSession(store, log)
	api := backend.New(backend.Config{
		BaseURL: cfg.APIBaseURL,
		Tokens:  session,
		Timeout: cfg.APITimeout,
	}, log)

	app := cli.New(
		session,
		service.NewAuth(api, session),
		service.NewCommunity(api, session),
		service.NewAssistant(api, session),
		log,
		os.Stdin, os.Stdout, os.Stderr,
	)
	return app.Run(ctx, os.Args[1:])
}

func openStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		r, err := storage.ConnectRedis(ctx, storage.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect session store: %w", err)
		}
		return r, func() { _ = r.Close() }, nil
	case "file", "":
		path, err := cfg.StatePath()
		if err != nil {
			return nil, nil, err
		}
		return storage.NewFile(path), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q (want file or redis)", cfg.Storage.Backend)
	}
}
