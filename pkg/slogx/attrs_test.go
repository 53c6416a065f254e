package slogx

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/casualjim/dove/pkg/callsite"
	"github.com/stretchr/testify/assert"
)

type named string

func (n named) String() string { return "named:" + string(n) }

func TestAttrs(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		attr := Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, "boom", attr.Value.String())
	})

	t.Run("stringer", func(t *testing.T) {
		attr := Stringer("who", named("x"))
		assert.Equal(t, "named:x", attr.Value.String())
	})

	t.Run("value", func(t *testing.T) {
		assert.Equal(t, "42", Value("type", 42).Value.String())
		assert.Equal(t, "ping", Value("type", "ping").Value.String())
	})

	t.Run("site", func(t *testing.T) {
		attr := Site("site", callsite.Site{File: "a.go", Line: 3})
		assert.Equal(t, slog.KindGroup, attr.Value.Kind())
		group := attr.Value.Group()
		assert.Len(t, group, 2)
		assert.Equal(t, "a.go", group[0].Value.String())
		assert.Equal(t, int64(3), group[1].Value.Int64())
	})

	t.Run("logger name", func(t *testing.T) {
		attr := LoggerName("dove")
		assert.Equal(t, KeyLoggerName, attr.Key)
		assert.Equal(t, "dove", attr.Value.String())
	})
}
