package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combi/decl"
)

func newIntsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ints <list>...",
		Short: "Parse a comma separated integer list and print its sum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := decl.ParseInts(strings.Join(args, " "))
			if err != nil {
				return err
			}
			var sum int64
			for _, n := range ns {
				fmt.Fprintln(cmd.OutOrStdout(), n)
				sum += n
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sum %d\n", sum)
			return nil
		},
	}
}
