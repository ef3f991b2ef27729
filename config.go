package ranger

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  _rangerConfig
	cfgErr  error
)

// _rangerConfig is a "hidden" struct, just use `rangerConfig`
type _rangerConfig struct {
	outputDir string
}

// rangerConfig returns the ranger configuration, read once from $RANGER_CONFIG/conf.toml.
func rangerConfig() (_rangerConfig, error) {
	cfgOnce.Do(func() {
		config, cfgErr = loadConfig(os.Getenv("RANGER_CONFIG"))
	})
	return config, cfgErr
}

// loadConfig reads conf.toml from the provided directory. Without a directory, the output
// goes to the working directory.
func loadConfig(confPath string) (_rangerConfig, error) {
	if confPath == "" {
		return _rangerConfig{outputDir: "."}, nil
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(confPath)
	v.SetDefault("general.output_path", ".")
	if err := v.ReadInConfig(); err != nil {
		return _rangerConfig{}, fmt.Errorf("%s/conf.toml: %w", confPath, err)
	}
	return _rangerConfig{outputDir: v.GetString("general.output_path")}, nil
}
