package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jin/internal/vocabulary"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the vocabulary cache",
	}
	cmd.AddCommand(newCacheStatusCommand())
	return cmd
}

func newCacheStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status [setType...]",
		Short: "Show whether each cache entry is up to date with its source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			setTypes, err := parseSetTypes(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}

			states := make([]vocabulary.CacheState, 0, len(setTypes))
			for _, setType := range setTypes {
				state, err := loader.CacheStatus(setType)
				if err != nil {
					return fmt.Errorf("loader.CacheStatus(%s) > %w", setType, err)
				}
				states = append(states, state)
			}
			return writeCacheStates(cmd.OutOrStdout(), states, time.Now())
		},
	}
}

func cacheStatusLabel(state vocabulary.CacheState) string {
	switch {
	case !state.Cached:
		return "missing"
	case state.Valid:
		return "valid"
	default:
		return "stale"
	}
}

func formatModTime(exists bool, modTime, now time.Time) string {
	if !exists {
		return "-"
	}
	return humanize.RelTime(modTime, now, "ago", "from now")
}

func writeCacheStates(w io.Writer, states []vocabulary.CacheState, now time.Time) error {
	rows := make([][]string, 0, len(states))
	for _, state := range states {
		rows = append(rows, []string{
			string(state.SetType),
			formatModTime(state.SourceExists, state.SourceModTime, now),
			formatModTime(state.Cached, state.CachedAt, now),
			cacheStatusLabel(state),
		})
	}
	_, err := fmt.Fprintln(w, renderTable(
		[]string{"Set", "Source Modified", "Cache Modified", "Status"},
		rows,
		[]text.Align{text.AlignLeft, text.AlignRight, text.AlignRight, text.AlignLeft},
	))
	return err
}
