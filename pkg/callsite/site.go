// Package callsite captures the source location of a caller so that
// registrations and posted messages can be traced back to the code that
// produced them.
package callsite

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Site identifies a location in source code.
type Site struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function,omitempty"`
}

// Caller returns the Site of the function skip frames above the caller of
// Caller. A skip of 0 returns the caller of Caller itself.
//
// When the stack is not deep enough the zero Site is returned.
func Caller(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	site := Site{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = fn.Name()
	}
	return site
}

// IsZero reports whether the site carries no location.
func (s Site) IsZero() bool {
	return s.File == "" && s.Line == 0
}

// Short returns the file base name and line, e.g. "main.go:42".
func (s Site) Short() string {
	if s.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(s.File), s.Line)
}

func (s Site) String() string {
	if s.IsZero() {
		return "file: unknown"
	}
	return fmt.Sprintf("file: %s (%d)", s.File, s.Line)
}
