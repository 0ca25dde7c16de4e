package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "RawData/all_models_data.json", cfg.Data)
	require.Equal(t, "Charts", cfg.Out)
	require.Equal(t, []string{"fbx", "obj", "gltf", "glb"}, cfg.Formats)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 1280, cfg.ChartWidth)
	require.Equal(t, 640, cfg.ChartHeight)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelreport.yaml")
	body := "data: data/run42.json\nformats: [fbx, glb]\nchart_width: 1600\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "data/run42.json", cfg.Data)
	require.Equal(t, []string{"fbx", "glb"}, cfg.Formats)
	require.Equal(t, 1600, cfg.ChartWidth)
	// Untouched keys keep their defaults.
	require.Equal(t, "Charts", cfg.Out)
	require.Equal(t, 640, cfg.ChartHeight)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out: FromYAML\n"), 0o644))
	t.Setenv("MODELREPORT_OUT", "FromEnv")
	t.Setenv("MODELREPORT_FORMATS", "gltf,glb")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "FromEnv", cfg.Out)
	require.Equal(t, []string{"gltf", "glb"}, cfg.Formats)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out: [unterminated\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
