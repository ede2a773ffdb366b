package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	emberwick "github.com/emberwick/emberwick"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "emberwick",
		Short:         "File-backed site engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), versionCmd())
	return root
}

func serveCmd() *cobra.Command {
	cfg := emberwick.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Scan the content tree and serve the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.Development)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			app, err := emberwick.New(cfg, logger)
			if err != nil {
				return err
			}

			stats := app.Store.Stats()
			logger.Info("serving",
				zap.String("addr", app.Addr()),
				zap.Int("pages", stats.Pages),
				zap.Int("posts", stats.BlogPosts),
				zap.Int("articles", stats.Articles),
			)
			return http.ListenAndServe(app.Addr(), app.Handler)
		},
	}

	cmd.Flags().StringVar(&cfg.Content.Root, "content", cfg.Content.Root, "content root directory")
	cmd.Flags().StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "listen host")
	cmd.Flags().IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "listen port")
	cmd.Flags().StringVar(&cfg.Content.CodeStyle, "code-style", cfg.Content.CodeStyle, "chroma style for code blocks")
	cmd.Flags().BoolVar(&cfg.Development, "dev", false, "development mode: show unpublished posts, allow reloads")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
