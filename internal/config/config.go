package config

import (
	"log"

	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StoragePebble = "pebble"
)

type Config struct {
	BrokerHost string
	BrokerPort string

	WebHost string
	WebPort string

	BrokerStorage     string
	BrokerStoreDir    string
	BrokerStateDir    string
	BrokerMessagesDir string
	BrokerPebbleDir   string
	BrokerFsync       bool

	QueueMaxMessages int
	DefaultVHost     string
}

type ClientConfig struct {
	BrokerAddr   string
	DefaultVHost string
}

func LoadConfig() Config {
	viper.SetDefault("BROKER_HOST", "localhost")
	viper.SetDefault("BROKER_PORT", "50051")

	viper.SetDefault("WEB_HOST", "localhost")
	viper.SetDefault("WEB_PORT", "3000")

	viper.SetDefault("BROKER_STORAGE", StorageMemory)
	viper.SetDefault("BROKER_STORE_DIR", "store")
	viper.SetDefault("BROKER_STATE_DIR", "state")
	viper.SetDefault("BROKER_MESSAGES_DIR", "messages")
	viper.SetDefault("BROKER_PEBBLE_DIR", "pebble")
	viper.SetDefault("BROKER_FSYNC", true)

	viper.SetDefault("QUEUE_MAX_MESSAGES", 0)
	viper.SetDefault("DEFAULT_VHOST", "/")

	viper.SetConfigFile(".env.broker")
	viper.SetConfigType("env")
	err := viper.ReadInConfig()
	if err != nil {
		log.Printf("error reading config file %v\n", err)
	}

	viper.AutomaticEnv()

	return Config{
		BrokerHost:        viper.GetString("BROKER_HOST"),
		BrokerPort:        viper.GetString("BROKER_PORT"),
		WebHost:           viper.GetString("WEB_HOST"),
		WebPort:           viper.GetString("WEB_PORT"),
		BrokerStorage:     viper.GetString("BROKER_STORAGE"),
		BrokerStoreDir:    viper.GetString("BROKER_STORE_DIR"),
		BrokerStateDir:    viper.GetString("BROKER_STATE_DIR"),
		BrokerMessagesDir: viper.GetString("BROKER_MESSAGES_DIR"),
		BrokerPebbleDir:   viper.GetString("BROKER_PEBBLE_DIR"),
		BrokerFsync:       viper.GetBool("BROKER_FSYNC"),
		QueueMaxMessages:  viper.GetInt("QUEUE_MAX_MESSAGES"),
		DefaultVHost:      viper.GetString("DEFAULT_VHOST"),
	}
}

func LoadClientConfig() ClientConfig {
	viper.SetDefault("BROKER_ADDR", "localhost:50051")
	viper.SetDefault("DEFAULT_VHOST", "/")

	viper.SetConfigFile(".env.client")
	viper.SetConfigType("env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Printf("error reading config file %v\n", err)
	}

	viper.AutomaticEnv()

	return ClientConfig{
		BrokerAddr:   viper.GetString("BROKER_ADDR"),
		DefaultVHost: viper.GetString("DEFAULT_VHOST"),
	}
}
