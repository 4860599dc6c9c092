package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combi/decl"
)

func newFieldsCmd() *cobra.Command {
	var outputFormat string
	var charset string

	cmd := &cobra.Command{
		Use:   "fields <file|->",
		Short: "Parse a declaration file and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args[0], charset)
			if err != nil {
				return err
			}
			defer in.Close()

			f, err := decl.Parse(in)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(f); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "text":
				if err := writeFields(cmd.OutOrStdout(), f.Fields); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return reportProblems(cmd.ErrOrStderr(), args[0], f.Problems)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&charset, "encoding", "", "character set of the input, e.g. ISO-8859-1 (default UTF-8)")

	return cmd
}

func writeFields(w io.Writer, fields []decl.Field) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", f.Line, f.Name, f.Type)
	}
	return tw.Flush()
}

func reportProblems(w io.Writer, name string, problems []decl.Problem) error {
	for _, p := range problems {
		fmt.Fprintf(w, "%s:%d: %s\n", name, p.Line, p.Message)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %d problems", name, len(problems))
	}
	return nil
}

