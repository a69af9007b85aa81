package helpers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Production(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "onboarding", "production")
	require.Equal(t, logrus.InfoLevel, logger.GetLevel())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "onboarding", line["app"])
	require.Equal(t, "logger initialized", line["msg"])
}

func TestNewLogger_Development(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "onboarding", "development")
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
	require.Contains(t, buf.String(), "logger initialized")
}
