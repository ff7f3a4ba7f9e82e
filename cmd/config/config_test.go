package configcmd_test

import (
	"bytes"
	"testing"

	configcmd "webdevbernard/renewal-list/cmd/config"
	"webdevbernard/renewal-list/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "config", configcmd.Cmd.Use)
	assert.Contains(t, configcmd.Cmd.Short, "configuration")
	assert.Contains(t, configcmd.Cmd.Long, "RENEWAL_")
	assert.NotNil(t, configcmd.Cmd.Run)
}

func TestPrint(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Renewal.InputDir = "/data/in"

	var buf bytes.Buffer
	require.NoError(t, configcmd.Print(&buf, cfg))

	out := buf.String()
	assert.Contains(t, out, "input_dir: /data/in")
	assert.Contains(t, out, "max_sources: 2")
	assert.Contains(t, out, "table_style: TableStyleLight1")

	var decoded config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *cfg, decoded)
}
