package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesServiceField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	log, err := New("BTCVAL-TEST", path)
	require.NoError(t, err)
	log.Infow("startup", "status", "ok")
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"service":"BTCVAL-TEST"`)
	assert.Contains(t, string(raw), `"status":"ok"`)
}
