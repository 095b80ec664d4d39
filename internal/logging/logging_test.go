package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithOutput(&buf, "info", true)
	require.NoError(t, err)

	log.WithField("request_id", "abc").Info("greeted")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "greeted", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithOutput(&buf, "warn", false)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}
