package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk key-value store and the holiday region.
type Config interface {
	BasePath() string
	Country() string
}

// LoadConfig reads the .harucal config file if one exists, layered under
// HARUCAL_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.harucal.db")
	viper.SetDefault("country", "KR")
	viper.SetConfigName(".harucal") // .yaml is implicit
	viper.SetEnvPrefix("HARUCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("HARUCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME/")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path, Region: viper.GetString("country")}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Region string `json:"country"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Country() string {
	return f.Region
}
