package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ibeckermayer/judgmentroutingbot/internal/agent"
	"github.com/ibeckermayer/judgmentroutingbot/internal/app"
	"github.com/ibeckermayer/judgmentroutingbot/internal/auth"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/logging"
	"github.com/ibeckermayer/judgmentroutingbot/internal/metrics"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/scheduler"
	"github.com/ibeckermayer/judgmentroutingbot/internal/server"
)

const description = "Teaching agents about judgment routing and the civic economics of automated decisions"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	a := cli.App{
		Name:    "judgmentroutingbot",
		Usage:   "moltbook agent that routes its attention by judgment",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to config.toml (defaults to the user config dir)",
				EnvVars: []string{"JRB_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "port",
				Usage:   "port for the control surface",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Action: runAgent,
	}
	return a.Run(args)
}

// loadConfig reads the config file, creating a default one on first run
func loadConfig(path string, logger logrus.FieldLogger) *config.Config {
	var err error
	if path == "" {
		path, err = config.ConfigPath()
		if err != nil {
			logger.WithError(err).Warn("could not resolve config path, using defaults")
			return config.Default()
		}
	}

	cfg, err := config.LoadFile(path)
	switch {
	case err == nil:
		return cfg
	case errors.Is(err, os.ErrNotExist):
		cfg = config.Default()
		if err := cfg.SaveFile(path); err != nil {
			logger.WithError(err).Warn("could not save default config")
		} else {
			logger.WithField("path", path).Info("created default config")
		}
		return cfg
	default:
		logger.WithError(err).Warn("could not load config, using defaults")
		return config.Default()
	}
}

func runAgent(cctx *cli.Context) error {
	logger := logging.NewLogger(cctx.String("log-level"))
	config.LoadEnv(logger)

	cfg := loadConfig(cctx.String("config"), logger)
	cfg.ApplyEnv()
	if port := cctx.String("port"); port != "" {
		cfg.Server.Port = port
	}
	if level := cctx.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	logger.SetLevel(logging.ParseLevel(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	credsPath, err := auth.DefaultCredentialsPath()
	if err != nil {
		return fmt.Errorf("credentials path: %w", err)
	}
	creds := auth.NewManager(auth.NewCredentialStore(credsPath))
	cfg.Platform.APIKey = creds.ResolveAPIKey(cfg.Platform.APIKey)

	m := metrics.New(versioninfo.Short())
	client := platform.New(cfg.Platform, logger)
	ag := agent.New(cfg, client, agent.WithLogger(logger), agent.WithMetrics(m))
	sched, err := scheduler.New("Local", logger)
	if err != nil {
		return err
	}
	svc := app.New(cfg, client, ag, sched, logger, app.WithCredentials(creds), app.WithMetrics(m))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := server.NewRouter(svc, server.Info{
		Name:        "JudgmentRoutingBot",
		Description: description,
		Version:     versioninfo.Short(),
	}, logger, m)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(ctx, cfg.Server.Port, router, logger)
	})

	if !client.HasCredentials() {
		logger.Warn("no MOLTBOOK_API_KEY found; serving the control surface only")
		logger.Info(`register with POST /register {"name": "JudgmentRoutingBot", "description": "..."} and restart`)
	} else {
		g.Go(func() error {
			if err := svc.Initialize(ctx); err != nil {
				return fmt.Errorf("failed to start agent: %w", err)
			}
			return svc.Run(ctx)
		})
	}

	err = g.Wait()
	svc.Stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("shut down")
	return nil
}
