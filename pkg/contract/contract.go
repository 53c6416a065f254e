// Package contract implements development-time contract checks.
//
// A violated contract is not an error that callers can handle: it is logged
// with the source location that detected it and the process is terminated.
// Tests swap the exit function to observe violations without dying.
package contract

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/casualjim/dove/pkg/callsite"
	"github.com/casualjim/dove/pkg/slogx"
)

// ExitCode is the process exit status used for contract violations.
const ExitCode = 2

// Checker reports contract violations to a logger and then exits.
type Checker struct {
	logger *slog.Logger
	exit   func(int)
}

// New creates a Checker. A nil logger uses slog.Default() at the time of the
// violation and a nil exit function uses os.Exit.
func New(logger *slog.Logger, exit func(int)) *Checker {
	return &Checker{logger: logger, exit: exit}
}

// Assert fails the contract at the caller's location when cond is false.
func (c *Checker) Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	c.Fail(callsite.Caller(1), format, args...)
}

// Fail logs a contract violation attributed to site and terminates the
// process. It returns only when the exit function does.
func (c *Checker) Fail(site callsite.Site, format string, args ...any) {
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("contract violated",
		slogx.Site("at", site),
		slog.String("message", fmt.Sprintf(format, args...)),
	)

	exit := c.exit
	if exit == nil {
		exit = os.Exit
	}
	exit(ExitCode)
}

var defaultChecker = New(nil, nil)

// Assert fails the contract at the caller's location when cond is false,
// logging to slog.Default() and exiting the process.
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	defaultChecker.Fail(callsite.Caller(1), format, args...)
}
