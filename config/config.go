package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME" default:"boothdesk"`
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Timezone string `envconfig:"TIMEZONE"`
	} `envconfig:"APP"`

	Backend struct {
		BaseURL string `envconfig:"BASE_URL" default:"http://localhost:4000"`
		// TimeoutSeconds of 0 leaves requests without a deadline; a hung
		// backend call then hangs the corresponding operation.
		TimeoutSeconds int `envconfig:"TIMEOUT_SECONDS" default:"0"`
	} `envconfig:"BACKEND"`

	Directory struct {
		PollIntervalSeconds int `envconfig:"POLL_INTERVAL_SECONDS" default:"10"`
	} `envconfig:"DIRECTORY"`

	Credentials struct {
		// File overrides the default location under the user config dir.
		File string `envconfig:"FILE"`
	} `envconfig:"CREDENTIALS"`

	Logo struct {
		MaxWidth    int `envconfig:"MAX_WIDTH" default:"1200"`
		MaxHeight   int `envconfig:"MAX_HEIGHT" default:"1200"`
		MaxSizeMB   int `envconfig:"MAX_SIZE_MB" default:"5"`
		JPEGQuality int `envconfig:"JPEG_QUALITY" default:"85"`
	} `envconfig:"LOGO"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Client configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
