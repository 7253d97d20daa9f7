package localsystem

import (
	"io"
	"log/slog"
	"os"
)

// Config holds the configuration for a Runner.
type Config struct {
	ProcessName string       // Trusted process to borrow the token from (default: winlogon.exe)
	Privilege   string       // Privilege enabled before the token is opened (default: SeDebugPrivilege)
	Output      io.Writer    // Where status and diagnostic lines go (default: os.Stdout)
	Styles      *Styles      // Styles for status lines (nil = plain text)
	Logger      *slog.Logger // Step trace (default: discarded)
}

// Option is a function that configures a Runner.
type Option func(*Config)

// WithProcessName sets the trusted process looked up by executable name.
// The comparison ignores case.
func WithProcessName(name string) Option {
	return func(c *Config) {
		c.ProcessName = name
	}
}

// WithPrivilege sets the privilege enabled on the caller's own token before
// the trusted process is opened.
func WithPrivilege(name string) Option {
	return func(c *Config) {
		c.Privilege = name
	}
}

// WithOutput sets the writer for status and diagnostic lines.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithStyles sets the styles for the success and failure lines.
func WithStyles(styles Styles) Option {
	return func(c *Config) {
		c.Styles = &styles
	}
}

// WithLogger sets the structured logger that receives the step trace.
// Every state transition is logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ProcessName: DefaultProcessName,
		Privilege:   DebugPrivilege,
		Output:      os.Stdout,
		Logger:      slog.New(slog.DiscardHandler),
	}
}
