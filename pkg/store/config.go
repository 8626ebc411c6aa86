package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base path for the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from an optional .organizer config
// file and ORGANIZER_* environment variables, defaulting to ~/.organizer.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.organizer.db")
	viper.SetConfigName(".organizer") // .yaml is implicit
	viper.SetEnvPrefix("ORGANIZER")
	viper.AutomaticEnv()

	if override := os.Getenv("ORGANIZER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

// StaticConfig returns a Config rooted at a fixed path, bypassing viper.
func StaticConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
