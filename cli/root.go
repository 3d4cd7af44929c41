// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmpi/config"
	"github.com/katalvlaran/lvmpi/logx"
)

// app is the state shared by the commands of one Execute call.
type app struct {
	stdout  *lockedWriter
	stderr  io.Writer
	flagged config.Config // flag destinations
	cfg     config.Config // resolved in PersistentPreRunE
	log     *slog.Logger
}

// NewRootCommand builds the lvmpi command tree writing results to stdout and
// logs and errors to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout:  &lockedWriter{w: stdout},
		stderr:  stderr,
		flagged: config.Default(),
	}

	root := &cobra.Command{
		Use:   "lvmpi",
		Short: "Distributed row-block matrix multiply and prefix sum",
		Long: `lvmpi runs SPMD programs on a group of ranks: either goroutines in this
process (--procs) or one process per rank connected over WebSockets
(--rank with --peers, started once per peer).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.resolve,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	config.BindFlags(root.PersistentFlags(), &a.flagged)

	root.AddCommand(a.matmulCommand(), a.prefixCommand())

	return root
}

// resolve layers configuration sources and builds the logger.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(cmd.Flags(), a.flagged)
	if err != nil {
		return err
	}
	log, err := logx.New(a.stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log.With(slog.String("mode", cfg.Mode().String()))

	return nil
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "lvmpi: %v\n", err)
	}

	return exitCode(err)
}
