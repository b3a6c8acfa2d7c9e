// Package cli implements the ytscrape command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/famomatic/ytscrape/client"
	"github.com/famomatic/ytscrape/internal/config"
	"github.com/famomatic/ytscrape/internal/server"
)

// App holds what the commands share: the environment configuration (which
// global flags override), the output stream and the logger.
type App struct {
	Config *config.Config
	Out    io.Writer
	Log    *log.Logger

	// NewScraper builds the scraper from the resolved configuration.
	// Defaults to client.New.
	NewScraper func(client.Config) server.Scraper

	verbose bool
}

func NewApp(cfg *config.Config) *App {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		FieldsOrder:     []string{"component", "category"},
		TimestampFormat: "15:04:05",
	})
	return &App{
		Config: cfg,
		Out:    os.Stdout,
		Log:    logger,
	}
}

// Command builds the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "ytscrape",
		Short: "Scrape YouTube search, playlist, channel and video pages as JSON",
		Long: `ytscrape fetches YouTube pages, extracts their embedded data and prints
normalized results as JSON.

Examples:
  ytscrape search "golang tutorial" --limit 5
  ytscrape search "lofi" --playlists --pages 3
  ytscrape playlist PLFgquLnL59alCl_2TQvOiD5Vgm1hCaGSI
  ytscrape video https://youtu.be/dQw4w9WgXcQ
  ytscrape serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.Log.SetLevel(a.Config.LogLevel)
			if a.verbose {
				a.Log.SetLevel(log.DebugLevel)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.Config.Proxy, "proxy", a.Config.Proxy, "Use the specified HTTP/HTTPS/SOCKS proxy")
	flags.StringVar(&a.Config.CookiesFile, "cookies", a.Config.CookiesFile, "Netscape formatted cookies file")
	flags.StringVar(&a.Config.BaseURL, "base-url", a.Config.BaseURL, "Site base URL")
	flags.DurationVar(&a.Config.Timeout, "timeout", a.Config.Timeout, "Per-operation timeout")
	flags.StringVar(&a.Config.Extractor, "extractor", a.Config.Extractor, "Page extractor (marker, dom)")
	flags.BoolVar(&a.Config.Consent, "consent", a.Config.Consent, "Send the consent cookie")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Print debugging information")

	root.AddCommand(
		a.searchCommand(),
		a.nextCommand(),
		a.playlistCommand(),
		a.channelCommand(),
		a.videoCommand(),
		a.serveCommand(),
	)
	return root
}

func (a *App) scraper() (server.Scraper, error) {
	cc, err := a.Config.ClientConfig(a.Log.WithField("component", "client"))
	if err != nil {
		return nil, err
	}
	if a.NewScraper != nil {
		return a.NewScraper(cc), nil
	}
	return client.New(cc), nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
