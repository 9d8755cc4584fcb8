package providers

import (
	"batlog/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"time"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "BATLOG_LOG_LEVEL")
	viper.BindEnv("database.dsn", "BATLOG_DATABASE_DSN")
	viper.BindEnv("identity.baseUrl", "BATLOG_IDENTITY_URL")
	viper.BindEnv("identity.apiKey", "BATLOG_IDENTITY_KEY")
	viper.BindEnv("cache.enabled", "BATLOG_CACHE_ENABLED")
	viper.BindEnv("cache.size", "BATLOG_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if conf.Undo.Window <= 0 {
		conf.Undo.Window = 5 * time.Second
	}
	if conf.Identity.Timeout <= 0 {
		conf.Identity.Timeout = 10 * time.Second
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "BatLog"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
