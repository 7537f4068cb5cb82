// Package rcd implements an rc-style service wrapper for the ioc jail
// orchestrator.
//
// The wrapper reproduces the contract of an rc.d init script: it loads a
// name=value rc configuration, checks the ioc_enable flag, and on start or
// stop delegates to the external ioc binary with the --rc flag, exporting
// the configured locale first and passing the command's exit status back
// to the supervisor untouched. A disabled service is a silent successful
// no-op.
//
//	w := rcd.New()
//	code, err := w.Run(context.Background(), rcd.DirectiveStart)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(code)
//
// Dispatch decisions are made by a pure planning step over the loaded
// Config, and command execution goes through the Runner interface, so the
// gating logic is testable without spawning processes.
//
// Beyond start and stop, the wrapper answers the generic rc directives:
// restart (stop then start), status and rcvar (report the enable flag),
// and enable/disable (atomic rewrite of the conf file).
//
// WatchConfig is provided for supervising agents that want to observe
// enable-flag or locale changes without polling the conf file.
package rcd
