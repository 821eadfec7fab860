package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exchart-go/internal/logger"
	"github.com/ukaji3/exchart-go/internal/watcher"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Chart spreadsheets as they appear in a directory",
		Long: `Watch a directory and print a chart record each time a spreadsheet
is created or written. Files that fail to decode are logged and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
	cmd.Flags().StringVarP(&chartKind, "kind", "k", "", "Chart kind: bar, line, pie, scatter (default: bar)")
	addOutputFlags(cmd)
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(parser.SupportedExtensions)
	if err != nil {
		return err
	}
	defer w.Close()

	paths, err := w.Watch(ctx, args[0])
	if err != nil {
		return err
	}
	logger.Info("watching %s", args[0])

	return watchLoop(ctx, cmd, newSession(), paths)
}

func watchLoop(ctx context.Context, cmd *cobra.Command, sess *exchart.Session, paths <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-paths:
			if !ok {
				return nil
			}
			if err := ingest(cmd, sess, path); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", path, err)
			}
		}
	}
}

func ingest(cmd *cobra.Command, sess *exchart.Session, path string) error {
	logger.Section(filepath.Base(path))
	if _, err := sess.UploadFile(path); err != nil {
		return err
	}
	if chartKind != "" {
		if err := sess.Config().SetKindName(chartKind); err != nil {
			return err
		}
	}

	rec, err := sess.Generate()
	if err != nil {
		return err
	}
	data, err := encodeRecord(cmd, rec)
	if err != nil {
		return err
	}
	return writeLine(cmd.OutOrStdout(), data)
}
