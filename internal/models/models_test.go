package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromCount(t *testing.T) {
	assert.Equal(t, VisitorStatusFirstTime, StatusFromCount(0))
	assert.Equal(t, VisitorStatusFirstTime, StatusFromCount(1))
	assert.Equal(t, VisitorStatusKnown, StatusFromCount(2))
	assert.Equal(t, VisitorStatusKnown, StatusFromCount(1000))
}

func TestVisitorStatusScan(t *testing.T) {
	var s VisitorStatus

	require.NoError(t, s.Scan("known"))
	assert.Equal(t, VisitorStatusKnown, s)

	require.NoError(t, s.Scan([]byte("first_time")))
	assert.Equal(t, VisitorStatusFirstTime, s)

	assert.Error(t, s.Scan("stranger"))
	assert.Error(t, s.Scan(int64(1)))
}

func TestVisitorStatusValue(t *testing.T) {
	v, err := VisitorStatusKnown.Value()
	require.NoError(t, err)
	assert.Equal(t, "known", v)
}

func TestVisitorTableName(t *testing.T) {
	assert.Equal(t, "users", Visitor{}.TableName())
}
