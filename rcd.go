package rcd

import (
	"io/fs"
	"time"
)

// Wrapper defaults and rc.conf key names
const (
	// ServiceName is the rc service name this wrapper represents
	ServiceName = "ioc"

	// DefaultConfPath is the default path to the rc configuration file
	DefaultConfPath = "/etc/rc.conf"

	// DefaultExecPath is the default installation path of the ioc binary
	DefaultExecPath = "/usr/local/bin/ioc"

	// DefaultLang is the locale exported when ioc_lang is unset
	DefaultLang = "en_US.UTF-8"

	// KeyEnable is the rc.conf variable gating start/stop
	KeyEnable = "ioc_enable"

	// KeyLang is the rc.conf variable selecting the exported locale
	KeyLang = "ioc_lang"

	// LangEnv is the environment variable the locale is exported through
	LangEnv = "LANG"

	// RCFlag is passed to every ioc invocation made on behalf of the
	// rc framework so ioc can distinguish boot/shutdown runs
	RCFlag = "--rc"
)

// Exit statuses reported to the supervisor
const (
	// ExitOK indicates success or a disabled-service no-op
	ExitOK = 0

	// ExitFailure is reported when the wrapper itself fails before the
	// external command produced a status
	ExitFailure = 1

	// ExitNotRunning is the conventional status exit code for a service
	// that is not enabled
	ExitNotRunning = 3
)

const (
	// DefaultWatchDebounce is the default debounce time for conf file watching
	DefaultWatchDebounce = 25 * time.Millisecond
)

// FileMode is the mode used when rewriting the conf file
const FileMode fs.FileMode = 0o644
