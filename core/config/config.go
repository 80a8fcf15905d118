package config

import (
	"reflect"
	"strings"

	"booking-api/core/broker"
	"booking-api/core/database"
	"booking-api/core/logger"
	"booking-api/core/server"
	"booking-api/core/storage"
	"booking-api/feature/catalog"
	"booking-api/feature/homes"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Homes holds configuration for the homes feature.
	Homes homes.Config `mapstructure:"homes"`
	// Database holds configuration for the catalog database connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the catalog object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Catalog selects where homes are seeded from at startup.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Broker holds configuration for the AMQP ingest consumer.
	Broker broker.Config `mapstructure:"broker"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key in Viper with the
// value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Registered even when empty so AutomaticEnv can see the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
