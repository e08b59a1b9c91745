package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvFileVar names the optional env file override. When unset, a ".env" in
// the working directory is loaded if present.
const EnvFileVar = "LIBRIA_ENV_FILE"

var exportOnce sync.Once

func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

// New loads the env file (once per process) and populates T from the
// environment using envconfig tags.
func New[T any](prefix string) (*T, error) {
	var exportErr error
	exportOnce.Do(func() {
		if path := strings.TrimSpace(os.Getenv(EnvFileVar)); path != "" {
			exportErr = exportEnvironment(path)
			return
		}
		exportErr = exportEnvironmentIfExists(".env")
	})
	if exportErr != nil {
		return nil, fmt.Errorf("failed to load env file: %w", exportErr)
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

func exportEnvironmentIfExists(filepath string) error {
	info, err := os.Stat(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	return exportEnvironment(filepath)
}

func exportEnvironment(filepath string) error {
	viper.SetConfigFile(filepath)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	for k, v := range viper.AllSettings() {
		if err := os.Setenv(strings.ToUpper(k), fmt.Sprint(v)); err != nil {
			return err
		}
	}

	return nil
}
