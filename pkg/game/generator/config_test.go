package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_Rejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":        func(c *Config) { c.Width = 0 },
		"negative height":   func(c *Config) { c.Height = -3 },
		"fill above 100":    func(c *Config) { c.RandomFillPercent = 101 },
		"fill below 0":      func(c *Config) { c.RandomFillPercent = -1 },
		"smooth above 20":   func(c *Config) { c.SmoothLevel = 21 },
		"negative wall":     func(c *Config) { c.WallThresholdSize = -1 },
		"negative room":     func(c *Config) { c.RoomThresholdSize = -1 },
		"negative passage":  func(c *Config) { c.PassageWidth = -1 },
		"negative border":   func(c *Config) { c.BorderSize = -1 },
		"unknown fill mode": func(c *Config) { c.FillMode = "voronoi" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	g, err := New(cfg)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_DefaultsFillMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FillMode = ""
	g, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, FillRandom, g.Config().FillMode)
}

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 123456789)

	seed, v := ResolveSeed("42", false, now)
	assert.Equal(t, "42", seed)
	assert.Equal(t, int64(42), v)

	seed, v = ResolveSeed("cave", false, now)
	_, again := ResolveSeed("cave", false, now)
	assert.Equal(t, "cave", seed)
	assert.Equal(t, v, again, "hashed seeds must be stable")

	_, other := ResolveSeed("caves", false, now)
	assert.NotEqual(t, v, other)

	seed, v = ResolveSeed("ignored", true, now)
	assert.Equal(t, "123456789", seed)
	assert.Equal(t, int64(123456789), v)
}
