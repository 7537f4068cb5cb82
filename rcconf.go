package rcd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio/v2"
)

// Config is the wrapper's view of the rc configuration. It is loaded once
// at process start and passed by value into the dispatcher; the wrapper
// never mutates it.
type Config struct {
	// Enable reports whether start/stop should act (ioc_enable)
	Enable bool

	// Lang is the locale exported before invoking ioc (ioc_lang)
	Lang string

	// Values holds every recognized assignment from the conf file,
	// unquoted, with the last assignment winning
	Values map[string]string
}

// DefaultConfig returns the configuration used when no keys are set
func DefaultConfig() Config {
	return Config{
		Enable: false,
		Lang:   DefaultLang,
		Values: make(map[string]string),
	}
}

// LoadConfig reads an rc.conf-style file: line-oriented name=value
// assignments with optional quoting, "#" comments, and last-assignment-wins
// semantics. Lines that are not simple assignments are ignored the way the
// rc framework ignores them. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading conf %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseConfLine(scanner.Text())
		if !ok {
			continue
		}
		cfg.Values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("reading conf %s: %w", path, err)
	}

	if v, ok := cfg.Values[KeyEnable]; ok {
		cfg.Enable = CheckYesNo(v)
	}
	if v, ok := cfg.Values[KeyLang]; ok && v != "" {
		cfg.Lang = v
	}

	return cfg, nil
}

// CheckYesNo interprets an rc boolean the way the rc framework's checkyesno
// does: YES/TRUE/ON/1 are true, everything else (including unset and
// malformed values) is false.
func CheckYesNo(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "YES", "TRUE", "ON", "1":
		return true
	default:
		return false
	}
}

// SetEnabled rewrites the enable assignment in the conf file atomically,
// updating the existing assignment in place or appending one, the way
// sysrc does. The file is created if it does not exist.
func SetEnabled(path string, enabled bool) error {
	value := "NO"
	if enabled {
		value = "YES"
	}
	assignment := fmt.Sprintf("%s=\"%s\"", KeyEnable, value)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading conf %s: %w", path, err)
	}

	var lines []string
	if len(data) > 0 {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	replaced := false
	for i, line := range lines {
		key, _, ok := parseConfLine(line)
		if ok && key == KeyEnable {
			lines[i] = assignment
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, assignment)
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := renameio.WriteFile(path, []byte(out), FileMode); err != nil {
		return fmt.Errorf("writing conf %s: %w", path, err)
	}
	return nil
}

// parseConfLine splits one conf line into an unquoted key/value pair.
// It reports ok=false for blank lines, comments, and anything that is not
// a simple assignment to a shell-style variable name.
func parseConfLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	eq := strings.IndexByte(line, '=')
	if eq <= 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:eq])
	if !isConfName(key) {
		return "", "", false
	}

	return key, unquoteConfValue(line[eq+1:]), true
}

// unquoteConfValue strips one level of single or double quoting and drops
// trailing comments from unquoted values.
func unquoteConfValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if quote := raw[0]; quote == '"' || quote == '\'' {
		if end := strings.IndexByte(raw[1:], quote); end >= 0 {
			return raw[1 : end+1]
		}
		// Unterminated quote: take the rest verbatim
		return raw[1:]
	}

	// Unquoted values end at the first whitespace or comment
	if i := strings.IndexAny(raw, " \t#"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// isConfName reports whether s is a valid shell variable name
func isConfName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
