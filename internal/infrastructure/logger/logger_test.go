package logger

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = Init(Config{Level: "info"}) })

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, Init(Config{Level: "loud"}))
	})

	t.Run("json with file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "app.log")
		require.NoError(t, Init(Config{Level: "debug", Format: "json", File: file, MaxSize: 1}))
		assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
		_, isJSON := Log.Formatter.(*logrus.JSONFormatter)
		assert.True(t, isJSON)
		Log.Info("[logger][test] file output")
		assert.FileExists(t, file)
	})
}
