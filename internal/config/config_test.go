package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherchem/isospec/internal/config"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	c := &config.Config{}
	config.ApplyDefaults(c)

	assert.Equal(t, 1024, c.Generator.TabSize)
	assert.Equal(t, 1024, c.Generator.HashSize)
	assert.Less(t, c.Generator.Delta, 0.0)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	c := &config.Config{Generator: config.GeneratorConfig{TabSize: 42, HashSize: 7, Delta: -2.0}}
	config.ApplyDefaults(c)

	assert.Equal(t, 42, c.Generator.TabSize)
	assert.Equal(t, 7, c.Generator.HashSize)
	assert.Equal(t, -2.0, c.Generator.Delta)
}

func TestValidate_RejectsPositiveDelta(t *testing.T) {
	c := &config.Config{}
	config.ApplyDefaults(c)
	c.Generator.Delta = 1.0

	err := c.Validate()
	require.Error(t, err)
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	c := &config.Config{}
	config.ApplyDefaults(c)
	c.Log.Level = "verbose"

	require.Error(t, c.Validate())
}

func TestLoadFromEnv_AppliesEnvOverride(t *testing.T) {
	t.Setenv("ISOSPEC_SERVER_ADDR", ":9090")

	c, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Server.Addr)
}

func TestLoad_ReturnsErrorOnMissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/isospec.yaml")
	require.Error(t, err)
}
