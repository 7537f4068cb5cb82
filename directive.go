package rcd

import (
	"fmt"
	"strings"
)

// Directive represents a supervisor lifecycle command
type Directive int

const (
	// DirectiveUnknown represents an unrecognized directive
	DirectiveUnknown Directive = iota
	// DirectiveStart starts the jails when the service is enabled
	DirectiveStart
	// DirectiveStop stops the jails when the service is enabled
	DirectiveStop
	// DirectiveRestart stops then starts the jails
	DirectiveRestart
	// DirectiveStatus reports whether the service is enabled
	DirectiveStatus
	// DirectiveRcvar prints the rc variable gating the service
	DirectiveRcvar
	// DirectiveEnable sets the enable flag in the conf file
	DirectiveEnable
	// DirectiveDisable clears the enable flag in the conf file
	DirectiveDisable
)

// Directive string constants
const (
	directiveUnknownStr = "unknown"
	directiveStartStr   = "start"
	directiveStopStr    = "stop"
	directiveRestartStr = "restart"
	directiveStatusStr  = "status"
	directiveRcvarStr   = "rcvar"
	directiveEnableStr  = "enable"
	directiveDisableStr = "disable"
)

// String returns the string representation of a Directive
func (d Directive) String() string {
	switch d {
	case DirectiveStart:
		return directiveStartStr
	case DirectiveStop:
		return directiveStopStr
	case DirectiveRestart:
		return directiveRestartStr
	case DirectiveStatus:
		return directiveStatusStr
	case DirectiveRcvar:
		return directiveRcvarStr
	case DirectiveEnable:
		return directiveEnableStr
	case DirectiveDisable:
		return directiveDisableStr
	default:
		return directiveUnknownStr
	}
}

// ParseDirective maps a supervisor-provided argument to a Directive.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDirective(s string) (Directive, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case directiveStartStr:
		return DirectiveStart, nil
	case directiveStopStr:
		return DirectiveStop, nil
	case directiveRestartStr:
		return DirectiveRestart, nil
	case directiveStatusStr:
		return DirectiveStatus, nil
	case directiveRcvarStr:
		return DirectiveRcvar, nil
	case directiveEnableStr:
		return DirectiveEnable, nil
	case directiveDisableStr:
		return DirectiveDisable, nil
	default:
		return DirectiveUnknown, fmt.Errorf("%w: %q", ErrUnknownDirective, s)
	}
}

// Directives returns every directive the wrapper accepts, in display order
func Directives() []Directive {
	return []Directive{
		DirectiveStart,
		DirectiveStop,
		DirectiveRestart,
		DirectiveStatus,
		DirectiveRcvar,
		DirectiveEnable,
		DirectiveDisable,
	}
}
