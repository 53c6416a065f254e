package dove

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/fogfish/opts"
	"github.com/go-openapi/swag"
)

// Environment variables read by FromEnv.
const (
	EnvTrace         = "DOVE_TRACE"
	EnvStrict        = "DOVE_STRICT"
	EnvMaxDrainSteps = "DOVE_MAX_DRAIN_STEPS"
)

// Config controls the diagnostic behavior of a Broker. None of the settings
// change queueing or dispatch order.
type Config struct {
	// Trace logs registrations, posted messages and dropped messages at debug
	// level, and unclaimed messages at warn level.
	Trace bool
	// Strict treats an unclaimed message as a contract violation: the
	// violation is logged and the process exits.
	Strict bool
	// MaxDrainSteps bounds how many messages a single Drain dispatches.
	// Zero means unbounded.
	MaxDrainSteps int
	// Logger receives all diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// Formatter renders payloads for trace records. Defaults to PrettyPayload.
	Formatter PayloadFormatter
	// Exit terminates the process on a contract violation. Defaults to os.Exit.
	Exit func(code int)
}

var (
	// WithTrace enables trace diagnostics.
	WithTrace = opts.ForName[Config, bool]("Trace")
	// WithStrict enables strict unclaimed-message enforcement.
	WithStrict = opts.ForName[Config, bool]("Strict")
	// WithMaxDrainSteps bounds the number of messages dispatched per Drain.
	WithMaxDrainSteps = opts.ForName[Config, int]("MaxDrainSteps")
)

// WithLogger sets the logger that receives diagnostics.
func WithLogger(logger *slog.Logger) opts.Option[Config] {
	return opts.Type[Config](func(c *Config) error {
		c.Logger = logger
		return nil
	})
}

// WithFormatter sets how payloads are rendered in trace records.
func WithFormatter(formatter PayloadFormatter) opts.Option[Config] {
	return opts.Type[Config](func(c *Config) error {
		c.Formatter = formatter
		return nil
	})
}

// WithExit replaces the function used to terminate the process on a contract
// violation. Tests use this to observe strict mode without exiting.
func WithExit(exit func(code int)) opts.Option[Config] {
	return opts.Type[Config](func(c *Config) error {
		c.Exit = exit
		return nil
	})
}

// WithConfig copies every field of cfg.
func WithConfig(cfg Config) opts.Option[Config] {
	return opts.Type[Config](func(c *Config) error {
		*c = cfg
		return nil
	})
}

// falseValues are the spellings accepted as false by FromEnv. Everything
// swag.ConvertBool accepts is true; anything else is rejected.
var falseValues = []string{"false", "no", "0", "n", "off", "f", "disabled", ""}

func parseEnvBool(name, value string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if truthy, _ := swag.ConvertBool(normalized); truthy {
		return true, nil
	}
	if slices.Contains(falseValues, normalized) {
		return false, nil
	}
	return false, fmt.Errorf("parse %s: not a boolean: %q", name, value)
}

// FromEnv reads DOVE_TRACE, DOVE_STRICT and DOVE_MAX_DRAIN_STEPS. Unset
// variables leave the current value untouched.
//
// Booleans accept the true spellings of swag.ConvertBool ("true", "1", "yes",
// "on", ...) and "false", "0", "no", "off", "n", "f", "disabled" or an empty
// value for false. Any other value is an error, so a typo never silently turns
// strict mode off.
func FromEnv() opts.Option[Config] {
	return opts.Type[Config](func(c *Config) error {
		if v, ok := os.LookupEnv(EnvTrace); ok {
			trace, err := parseEnvBool(EnvTrace, v)
			if err != nil {
				return err
			}
			c.Trace = trace
		}
		if v, ok := os.LookupEnv(EnvStrict); ok {
			strict, err := parseEnvBool(EnvStrict, v)
			if err != nil {
				return err
			}
			c.Strict = strict
		}
		if v, ok := os.LookupEnv(EnvMaxDrainSteps); ok {
			n, err := swag.ConvertInt64(v)
			if err != nil {
				return fmt.Errorf("parse %s: %w", EnvMaxDrainSteps, err)
			}
			if n < 0 {
				return fmt.Errorf("parse %s: must not be negative, got %d", EnvMaxDrainSteps, n)
			}
			c.MaxDrainSteps = int(n)
		}
		return nil
	})
}

func newConfig(options []opts.Option[Config]) (Config, error) {
	var cfg Config
	if err := opts.Apply(&cfg, options); err != nil {
		return Config{}, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = PrettyPayload
	}
	if cfg.Exit == nil {
		cfg.Exit = os.Exit
	}
	if cfg.MaxDrainSteps < 0 {
		cfg.MaxDrainSteps = 0
	}
	return cfg, nil
}
