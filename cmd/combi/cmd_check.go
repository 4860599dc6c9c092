package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combi/decl"
)

func newCheckCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check every declaration file below a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			ws := decl.NewWorkspace(root)

			if !watch {
				if err := ws.ScanAll(); err != nil {
					return fmt.Errorf("scan %s: %w", root, err)
				}
				return checkAll(cmd.ErrOrStderr(), ws)
			}

			w := decl.NewWatcher(ws, interval, func(path string) {
				fi := ws.GetFile(path)
				if fi == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: removed\n", path)
					return
				}
				if err := reportProblems(cmd.ErrOrStderr(), path, fi.Decls.Problems); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d fields)\n", path, len(fi.Decls.Fields))
				}
			})
			w.Start()
			defer w.Stop()

			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and re-check files when they change")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval for --watch")

	return cmd
}

func checkAll(w io.Writer, ws *decl.Workspace) error {
	problems := ws.Problems()
	total := 0
	for _, path := range ws.Paths() {
		for _, p := range problems[path] {
			fmt.Fprintf(w, "%s:%d: %s\n", path, p.Line, p.Message)
			total++
		}
	}
	if total > 0 {
		return fmt.Errorf("%d problems in %d files", total, len(problems))
	}
	return nil
}
