// Command iocrc is the rc service wrapper binary for the ioc jail
// orchestrator. The supervisor invokes it with a single directive
// (iocrc start, iocrc stop, ...) and receives the external command's
// exit status as its own.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/axondata/go-rcd"
)

var directiveHelp = map[rcd.Directive]string{
	rcd.DirectiveStart:   "Start the jails if the service is enabled",
	rcd.DirectiveStop:    "Stop the jails if the service is enabled",
	rcd.DirectiveRestart: "Stop then start the jails if the service is enabled",
	rcd.DirectiveStatus:  "Report whether the service is enabled",
	rcd.DirectiveRcvar:   "Print the rc variable gating the service",
	rcd.DirectiveEnable:  "Set " + rcd.KeyEnable + " in the conf file",
	rcd.DirectiveDisable: "Clear " + rcd.KeyEnable + " in the conf file",
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		confPath string
		execPath string
		timeout  time.Duration
	)

	root := &cobra.Command{
		Use:           "iocrc",
		Short:         "rc service wrapper for the ioc jail orchestrator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&confPath, "conf", rcd.DefaultConfPath, "rc configuration file")
	root.PersistentFlags().StringVar(&execPath, "exec", rcd.DefaultExecPath, "path to the ioc binary")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-command timeout (0 disables)")

	exitCode := rcd.ExitOK
	for _, d := range rcd.Directives() {
		root.AddCommand(&cobra.Command{
			Use:   d.String(),
			Short: directiveHelp[d],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				w := rcd.New(
					rcd.WithConfPath(confPath),
					rcd.WithExecPath(execPath),
					rcd.WithTimeout(timeout),
				)

				code, err := w.Run(cmd.Context(), d)
				exitCode = code
				return err
			},
		})
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == rcd.ExitOK {
			exitCode = rcd.ExitFailure
		}
	}
	return exitCode
}
