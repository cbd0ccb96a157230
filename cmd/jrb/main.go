// Command jrb is a dev CLI for judgmentroutingbot maintenance and debugging tasks.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/carlmjohnson/versioninfo"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/ibeckermayer/judgmentroutingbot/internal/agent"
	"github.com/ibeckermayer/judgmentroutingbot/internal/auth"
	"github.com/ibeckermayer/judgmentroutingbot/internal/composer"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/logging"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

func main() {
	a := cli.App{
		Name:    "jrb",
		Usage:   "judgmentroutingbot maintenance and debugging",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log platform requests",
			},
		},
		Commands: []*cli.Command{
			registerCmd,
			statusCmd,
			logoutCmd,
			configCmd,
			classifyCmd,
			searchCmd,
			trendsCmd,
		},
	}
	if err := a.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type env struct {
	cfg    *config.Config
	creds  *auth.Manager
	log    *logrus.Logger
	client *platform.Client
}

// setup loads config and credentials the same way the daemon does
func setup(cctx *cli.Context) (*env, error) {
	level := "warn"
	if cctx.Bool("verbose") {
		level = "debug"
	}
	logger := logging.NewTextLogger(level)
	config.LoadEnv(logger)

	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	path, err := auth.DefaultCredentialsPath()
	if err != nil {
		return nil, err
	}
	creds := auth.NewManager(auth.NewCredentialStore(path))
	cfg.Platform.APIKey = creds.ResolveAPIKey(cfg.Platform.APIKey)

	return &env{
		cfg:    cfg,
		creds:  creds,
		log:    logger,
		client: platform.New(cfg.Platform, logger),
	}, nil
}

func (e *env) requireKey() error {
	if !e.client.HasCredentials() {
		return errors.New("no API key; run `jrb register` or set MOLTBOOK_API_KEY")
	}
	return nil
}

var registerCmd = &cli.Command{
	Name:  "register",
	Usage: "register a new agent and store its API key",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Value: "JudgmentRoutingBot"},
		&cli.StringFlag{
			Name:  "description",
			Value: "Teaching agents about judgment routing and the civic economics of automated decisions",
		},
		&cli.BoolFlag{Name: "open", Usage: "open the claim URL in a browser"},
	},
	Action: func(cctx *cli.Context) error {
		e, err := setup(cctx)
		if err != nil {
			return err
		}
		if e.creds.IsAuthenticated() {
			return errors.New("credentials already stored; run `jrb logout` first")
		}

		reg, err := e.creds.Register(cctx.Context, e.client, cctx.String("name"), cctx.String("description"))
		if err != nil {
			return err
		}
		fmt.Printf("API key:           %s\n", reg.APIKey)
		fmt.Printf("Claim URL:         %s\n", reg.ClaimURL)
		fmt.Printf("Verification code: %s\n", reg.VerificationCode)

		if cctx.Bool("open") && reg.ClaimURL != "" {
			return browser.OpenURL(reg.ClaimURL)
		}
		return nil
	},
}

var statusCmd = &cli.Command{
	Name:  "status",
	Usage: "show claim status and profile",
	Action: func(cctx *cli.Context) error {
		e, err := setup(cctx)
		if err != nil {
			return err
		}
		if err := e.requireKey(); err != nil {
			return err
		}

		status, err := e.client.Status(cctx.Context)
		if err != nil {
			return err
		}
		profile, err := e.client.Profile(cctx.Context)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s), karma %d\n", profile.Name, status.Status, profile.Karma)
		if status.PendingClaim() {
			if stored, err := e.creds.Credentials(); err == nil && stored.ClaimURL != "" {
				fmt.Printf("Claim URL: %s\n", stored.ClaimURL)
			}
		}
		return nil
	},
}

var logoutCmd = &cli.Command{
	Name:  "logout",
	Usage: "remove the stored API key",
	Action: func(cctx *cli.Context) error {
		e, err := setup(cctx)
		if err != nil {
			return err
		}
		return e.creds.Logout()
	},
}

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "inspect the config file",
	Subcommands: []*cli.Command{
		{
			Name:  "open",
			Usage: "open config file in default editor",
			Action: func(cctx *cli.Context) error {
				path, err := config.ConfigPath()
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
					if err := config.Default().SaveFile(path); err != nil {
						return err
					}
				}
				return browser.OpenFile(path)
			},
		},
		{
			Name:  "show",
			Usage: "print the effective config",
			Action: func(cctx *cli.Context) error {
				e, err := setup(cctx)
				if err != nil {
					return err
				}
				cfg := *e.cfg
				if cfg.Platform.APIKey != "" {
					cfg.Platform.APIKey = "(set)"
				}
				return toml.NewEncoder(os.Stdout).Encode(cfg)
			},
		},
		{
			Name:  "path",
			Usage: "print the config file path",
			Action: func(cctx *cli.Context) error {
				path, err := config.ConfigPath()
				if err != nil {
					return err
				}
				fmt.Println(path)
				return nil
			},
		},
	},
}

var classifyCmd = &cli.Command{
	Name:  "classify",
	Usage: "dry-run the classifier on a post without touching the platform",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "title", Required: true},
		&cli.StringFlag{Name: "text"},
		&cli.IntFlag{Name: "score"},
		&cli.IntFlag{Name: "comments"},
	},
	Action: func(cctx *cli.Context) error {
		e, err := setup(cctx)
		if err != nil {
			return err
		}
		ag := agent.New(e.cfg, nil, agent.WithLogger(logging.NewDiscardLogger()))
		post := types.Post{
			Title:       cctx.String("title"),
			Text:        cctx.String("text"),
			Score:       cctx.Int("score"),
			NumComments: cctx.Int("comments"),
		}
		return printReport("Classification", ag, []types.Post{post}, nil)
	},
}

var searchCmd = &cli.Command{
	Name:      "search",
	Usage:     "search the platform and classify what comes back",
	ArgsUsage: "<query>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "type", Value: "posts", Usage: "all, posts, comments or agents"},
		&cli.IntFlag{Name: "limit", Value: 20},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() == 0 {
			return errors.New("query is required")
		}
		e, err := setup(cctx)
		if err != nil {
			return err
		}
		if err := e.requireKey(); err != nil {
			return err
		}

		hits, err := e.client.Search(cctx.Context, cctx.Args().First(), cctx.String("type"), cctx.Int("limit"))
		if err != nil {
			return err
		}
		posts := make([]types.Post, 0, len(hits))
		for _, h := range hits {
			id := h.ID
			if h.PostID != "" {
				id = h.PostID
			}
			posts = append(posts, types.Post{ID: id, Title: h.Title, Text: h.Text, Content: h.Content, Author: h.Author})
		}
		ag := agent.New(e.cfg, e.client, agent.WithLogger(logging.NewDiscardLogger()))
		return printReport(fmt.Sprintf("Search: %s", cctx.Args().First()), ag, posts, nil)
	},
}

var trendsCmd = &cli.Command{
	Name:  "trends",
	Usage: "count the most frequent words across top posts",
	Action: func(cctx *cli.Context) error {
		e, err := setup(cctx)
		if err != nil {
			return err
		}
		if err := e.requireKey(); err != nil {
			return err
		}
		ag := agent.New(e.cfg, e.client, agent.WithLogger(e.log))
		trends, err := ag.TopTrends(cctx.Context)
		if err != nil {
			return err
		}
		return printReport("Trends", ag, nil, trends)
	},
}

// printReport classifies posts, draws a sample response for each one the
// agent would answer and prints the result
func printReport(title string, ag *agent.Agent, posts []types.Post, trends []types.Trend) error {
	analyses, err := ag.Analyzer().AnalyzePosts(context.Background(), posts)
	if err != nil {
		return err
	}

	items := make([]composer.ReportItem, 0, len(analyses))
	for _, an := range analyses {
		item := composer.ReportItem{Analysis: an}
		if an.Decision.Respond {
			item.Response = ag.Responder().Generate(an.Post, an.Decision)
		}
		items = append(items, item)
	}

	out, err := composer.Default().Report(title, items, trends)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
