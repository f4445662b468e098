// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pod-sync/models"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

// Usage returns the help text of the command tree run by Execute.
func Usage() string {
	return (&App{}).newRootCommand().UsageString()
}

// Execute runs one command line. No arguments means "run". Edits are stored
// in the change journal first; the sync that follows them is best effort and
// a failure leaves the edit pending for the next run.
func (a *App) Execute(ctx context.Context, args []string, out io.Writer) error {
	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	return root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "go-pod-sync-client [command]",
		Short:         "Sync the Up Next queue and starred episodes",
		Args:          unknownSubcommand,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Sync periodically until interrupted (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "sync",
			Short: "Run one sync of both collections",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.SyncNow(cmd.Context()); err != nil {
					return err
				}
				printQueue(cmd.OutOrStdout(), a.upNext.Queue())
				return nil
			},
		},
		a.newQueueCommand(),
		a.newStarCommand("star", "Star an episode", true),
		a.newStarCommand("unstar", "Unstar an episode", false),
		&cobra.Command{
			Use:   "flag <id>",
			Short: "Print the starred flag of an episode",
			Args:  episodeID,
			RunE: func(cmd *cobra.Command, args []string) error {
				flag, err := a.stars.Flag(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printFlag(cmd.OutOrStdout(), flag)
				return nil
			},
		},
	)

	return root
}

func (a *App) newQueueCommand() *cobra.Command {
	show := func(cmd *cobra.Command, _ []string) error {
		printQueue(cmd.OutOrStdout(), a.upNext.Queue())
		return nil
	}

	queue := &cobra.Command{
		Use:   "queue",
		Short: "Print or edit the Up Next queue",
		Args:  unknownSubcommand,
		RunE:  show,
	}

	queue.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the Up Next queue",
			Args:  cobra.NoArgs,
			RunE:  show,
		},
		a.newQueueEdit("replace [id...]", "Replace the whole queue", cobra.ArbitraryArgs,
			func(ctx context.Context, args []string) (models.QueueState, error) {
				return a.upNext.Replace(ctx, args...)
			}),
		a.newQueueEdit("next <id>", "Play an episode next", episodeID,
			func(ctx context.Context, args []string) (models.QueueState, error) {
				return a.upNext.PlayNext(ctx, args[0])
			}),
		a.newQueueEdit("last <id>", "Play an episode last", episodeID,
			func(ctx context.Context, args []string) (models.QueueState, error) {
				return a.upNext.PlayLast(ctx, args[0])
			}),
		a.newQueueEdit("remove <id>", "Remove an episode from the queue", episodeID,
			func(ctx context.Context, args []string) (models.QueueState, error) {
				return a.upNext.Remove(ctx, args[0])
			}),
		a.newQueueEdit("clear", "Empty the queue", cobra.NoArgs,
			func(ctx context.Context, _ []string) (models.QueueState, error) {
				return a.upNext.ClearAll(ctx)
			}),
	)

	return queue
}

type queueEdit func(ctx context.Context, args []string) (models.QueueState, error)

func (a *App) newQueueEdit(use, short string, validate cobra.PositionalArgs, edit queueEdit) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  validate,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := edit(cmd.Context(), args); err != nil {
				return err
			}
			a.syncAfterEdit(cmd.Context())
			printQueue(cmd.OutOrStdout(), a.upNext.Queue())
			return nil
		},
	}
}

func (a *App) newStarCommand(name, short string, starred bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  episodeID,
		RunE: func(cmd *cobra.Command, args []string) error {
			flag, err := a.stars.SetStarred(cmd.Context(), args[0], starred)
			if err != nil {
				return err
			}
			a.syncAfterEdit(cmd.Context())
			printFlag(cmd.OutOrStdout(), flag)
			return nil
		},
	}
}

func (a *App) syncAfterEdit(ctx context.Context) {
	if err := a.SyncNow(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("sync after edit failed, the change stays pending")
	}
}

// unknownSubcommand rejects positional arguments left over after cobra found
// no matching subcommand.
func unknownSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %q for %q", ErrUnknownCommand, args[0], cmd.CommandPath())
}

// episodeID accepts exactly one non-blank episode identifier.
func episodeID(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("%w: %s needs an episode id", ErrMissingArgument, cmd.Name())
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func printQueue(out io.Writer, queue models.QueueState) {
	ids := queue.Identifiers()
	fmt.Fprintf(out, "up next (%d):\n", len(ids))
	for i, id := range ids {
		fmt.Fprintf(out, "  %d. %s\n", i+1, id)
	}
}

func printFlag(out io.Writer, flag models.FlagState) {
	state := "not starred"
	if flag.Value {
		state = "starred"
	}
	fmt.Fprintf(out, "%s: %s (modified %d)\n", flag.Identifier, state, flag.LastModifiedAtMs)
}
