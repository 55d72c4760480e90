package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelEnv overrides the default log level when --log-level is not given
const LevelEnv = "APPCTL_LOG_LEVEL"

// DefaultLevel keeps routine registry and cluster chatter out of the CLI output
const DefaultLevel = "warn"

// ResolveLevel picks the flag value when set, then the environment, then DefaultLevel
func ResolveLevel(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(LevelEnv); env != "" {
		return env
	}
	return DefaultLevel
}

// Configure installs a text handler on w as the default slog logger
func Configure(w io.Writer, level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return fmt.Errorf("invalid log level '%s': use debug, info, warn or error", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})))
	return nil
}
