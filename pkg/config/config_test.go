package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/scanvalue"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, scanvalue.AnyNumber, cfg.DataType())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan_data_type: bytearray\nwildcard: \"**\"\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, scanvalue.ByteArray, cfg.DataType())
	assert.Equal(t, "**", cfg.Wildcard)
	assert.Equal(t, 128, cfg.FormatCapacity)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"type":     "scan_data_type: int128\n",
		"capacity": "format_capacity: 0\n",
		"wildcard": "wildcard: \"?\"\n",
		"yaml":     "scan_data_type: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{ScanDataType: "float32", FormatCapacity: 40, Wildcard: "xx"}
	require.NoError(t, cfg.Save(path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
