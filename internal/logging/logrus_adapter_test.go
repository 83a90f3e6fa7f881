package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newCapturedAdapter() (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	return NewLogrusAdapter(logger), &buf
}

func TestLogrusAdapter_Levels(t *testing.T) {
	adapter, buf := newCapturedAdapter()

	adapter.Debug("debug message")
	adapter.Info("info message")
	adapter.Warn("warn message")
	adapter.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLogrusAdapter_Fields(t *testing.T) {
	adapter, buf := newCapturedAdapter()

	adapter.Info("with fields", Field{Key: FieldCategory, Value: "Food"})
	assert.Contains(t, buf.String(), "Food")

	buf.Reset()
	adapter.WithField(FieldFile, "expenses.txt").Info("attached")
	assert.Contains(t, buf.String(), "expenses.txt")

	buf.Reset()
	adapter.WithError(errors.New("boom")).Error("failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestNewLogrusAdapter_NilFallsBack(t *testing.T) {
	assert.NotNil(t, NewLogrusAdapter(nil))
}

func TestSetAllLogLevels(t *testing.T) {
	original := GetLogger().GetLevel()
	defer SetAllLogLevels(original)

	SetAllLogLevels(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())
}
