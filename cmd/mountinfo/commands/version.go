package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the mountinfo version, build information, and system details.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), short)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Show only version number")
	return cmd
}

func printVersion(w io.Writer, short bool) {
	if short {
		_, _ = fmt.Fprintln(w, Version)
		return
	}

	_, _ = fmt.Fprintf(w, "mountinfo %s\n", Version)
	_, _ = fmt.Fprintf(w, "  Commit:     %s\n", Commit)
	_, _ = fmt.Fprintf(w, "  Built:      %s\n", Date)
	_, _ = fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	_, _ = fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
