package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.BrokerHost)
	assert.Equal(t, "50051", cfg.BrokerPort)
	assert.Equal(t, "3000", cfg.WebPort)
	assert.Equal(t, StorageMemory, cfg.BrokerStorage)
	assert.Equal(t, 0, cfg.QueueMaxMessages)
	assert.Equal(t, "/", cfg.DefaultVHost)
	assert.True(t, cfg.BrokerFsync)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BROKER_PORT", "6000")
	t.Setenv("BROKER_STORAGE", StoragePebble)
	t.Setenv("QUEUE_MAX_MESSAGES", "25")

	cfg := LoadConfig()

	assert.Equal(t, "6000", cfg.BrokerPort)
	assert.Equal(t, StoragePebble, cfg.BrokerStorage)
	assert.Equal(t, 25, cfg.QueueMaxMessages)
}

func TestLoadClientConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := LoadClientConfig()

	assert.Equal(t, "localhost:50051", cfg.BrokerAddr)
	assert.Equal(t, "/", cfg.DefaultVHost)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
