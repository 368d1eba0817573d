package main

import (
	"io"
	"os"

	"github.com/ddirect/sequence/arraylist"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	capacity int
	key      int
	numeric  bool
	reverse  bool
	verbose  bool
}

func newCommand() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "qsort [file]",
		Short: "Sort the lines of a file, or of the standard input, with quicksort",
		Args:  cobra.MaximumNArgs(1),

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			if o.key < 0 {
				return errors.Errorf("invalid key field: %d", o.key)
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.WithStack(err)
				}
				defer f.Close()
				in = f
			}

			logOut := io.Discard
			if o.verbose {
				logOut = cmd.ErrOrStderr()
			}

			return run(o, in, cmd.OutOrStdout(), logOut)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&o.capacity, "capacity", arraylist.DefaultCapacity, "initial capacity of the list holding the lines")
	flags.IntVarP(&o.key, "key", "k", 0, "sort on this whitespace separated field, starting from 1; 0 uses the whole line")
	flags.BoolVarP(&o.numeric, "numeric", "n", false, "compare keys as numbers")
	flags.BoolVarP(&o.reverse, "reverse", "r", false, "sort in descending order")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to the standard error")

	return cmd
}
