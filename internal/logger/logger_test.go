package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizcard/internal/config"
)

func TestNew_WritesToLogFile(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		t.Run(env, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "logs", "quizcard.log")

			log, err := New(&config.Config{Env: env, LogPath: path})
			require.NoError(t, err)

			log.Info("attempt recorded")
			_ = log.Sync()

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "attempt recorded")
		})
	}
}
