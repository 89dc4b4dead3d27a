package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLoggerFormat(t *testing.T) {
	log := InitLogger("", "text", true)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = InitLogger("warn", "JSON", true)
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log = InitLogger("", "text", false)
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter, "production always logs json")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Same(t, log, GetLogger())
}
