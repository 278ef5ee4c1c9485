package logger

import (
	"giya-service/internal/app/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestOutputPaths(t *testing.T) {
	driverConfig := &config.DriverConfig{}
	driverConfig.Logger.OutputFileName = "giya.log"
	driverConfig.Logger.OutputErrorFileName = "giya_error.log"

	out, errOut := outputPaths(driverConfig, "development")
	assert.Equal(t, []string{"stdout"}, out)
	assert.Equal(t, []string{"stderr"}, errOut)

	for _, env := range []string{"staging", "production"} {
		out, errOut = outputPaths(driverConfig, env)
		assert.Equal(t, []string{"giya.log"}, out, env)
		assert.Equal(t, []string{"stderr", "giya_error.log"}, errOut, env)
	}
}

func TestNewLogrusLogger(t *testing.T) {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.Env = "development"

	accessLog := NewLogrusLogger(internalConfig)
	_, isText := accessLog.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}
