package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/famomatic/ytscrape/client"
	"github.com/famomatic/ytscrape/internal/server"
)

type pageOutput struct {
	Items []client.Item            `json:"items"`
	Next  client.ContinuationState `json:"next"`
}

func (a *App) searchCommand() *cobra.Command {
	var (
		opts  client.SearchOptions
		pages int
	)
	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search for videos, playlists and channels",
		Long: `Search fetches result pages for a keyword. The printed "next" state can
be piped to "ytscrape next" to continue later.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 0 {
				return fmt.Errorf("--pages must not be negative")
			}
			s, err := a.scraper()
			if err != nil {
				return err
			}
			pager := client.NewPager(s, strings.Join(args, " "), opts)
			items, err := pager.All(cmd.Context(), pages)
			if err != nil {
				if len(items) == 0 {
					return err
				}
				a.Log.WithError(err).Warnf("stopped after %d items", len(items))
			}
			return a.print(pageOutput{Items: items, Next: pager.State()})
		},
	}
	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Result type filter (video, channel, playlist, movie)")
	cmd.Flags().BoolVar(&opts.IncludePlaylists, "playlists", false, "Include playlists in the results")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "Maximum items per page (0 for all)")
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to fetch (0 until exhausted)")
	return cmd
}

func (a *App) nextCommand() *cobra.Command {
	var (
		playlists bool
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "next [state]",
		Short: "Fetch the page after a continuation state",
		Long:  `Next reads a continuation state as JSON from the argument or stdin.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			if len(args) == 1 {
				raw = []byte(args[0])
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read state: %w", err)
				}
				raw = b
			}
			var state client.ContinuationState
			if err := json.Unmarshal(raw, &state); err != nil {
				return fmt.Errorf("decode state: %w", err)
			}
			s, err := a.scraper()
			if err != nil {
				return err
			}
			res, err := s.NextPage(cmd.Context(), state, playlists, limit)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	cmd.Flags().BoolVar(&playlists, "playlists", false, "Include playlists in the results")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum items (0 for all)")
	return cmd
}

func (a *App) playlistCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "playlist [id or url]",
		Short: "Fetch the first page of a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scraper()
			if err != nil {
				return err
			}
			res, err := s.GetPlaylist(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum items (0 for all)")
	return cmd
}

func (a *App) channelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "channel [id or url]",
		Short: "Fetch the tabs of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scraper()
			if err != nil {
				return err
			}
			tabs, err := s.GetChannel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(tabs)
		},
	}
}

func (a *App) videoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "video [id or url]",
		Short: "Fetch video metadata and suggestions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scraper()
			if err != nil {
				return err
			}
			details, err := s.GetVideoDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(details)
		},
	}
}

func (a *App) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scraper as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scraper()
			if err != nil {
				return err
			}
			reporting := a.Config.SentryDSN != ""
			if reporting {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:              a.Config.SentryDSN,
					Release:          a.Config.Release,
					TracesSampleRate: 1.0,
				}); err != nil {
					return fmt.Errorf("sentry init: %w", err)
				}
				defer sentry.Flush(2 * time.Second)
			}
			srv := server.New(s, server.Options{
				MaxLimit: a.Config.MaxLimit,
				Logger:   a.Log.WithField("component", "server"),
				Sentry:   reporting,
			})
			return srv.Run(cmd.Context(), a.Config.Addr)
		},
	}
	cmd.Flags().StringVar(&a.Config.Addr, "addr", a.Config.Addr, "Listen address")
	cmd.Flags().IntVar(&a.Config.MaxLimit, "max-limit", a.Config.MaxLimit, "Cap on per-request limits")
	return cmd
}
