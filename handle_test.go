package dove

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandle(t *testing.T) {
	h := NewHandle()
	id, err := uuid.Parse(string(h))
	require.NoError(t, err, "NewHandle should return a valid UUID string")
	assert.Equal(t, uuid.Version(7), id.Version(), "UUID should be version 7")

	assert.NotEqual(t, h, NewHandle(), "Generated handles should be unique")
}

func TestHandle_String(t *testing.T) {
	assert.Equal(t, "<anonymous>", NoHandle.String())
	assert.Equal(t, "renderer", Handle("renderer").String())
}
