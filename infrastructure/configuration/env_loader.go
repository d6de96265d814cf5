package configuration

import (
	"os"
	"strings"

	"trending-videos/infrastructure/logger"

	"github.com/spf13/viper"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more dotenv files (e.g. config.env, .env).
// Existing env vars are not overridden.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		v := viper.New()
		v.SetConfigFile(p)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			logger.GetLogger().WithField("error", err).WithField("file", p).Warn("Unable to read env file")
			continue
		}
		for _, key := range v.AllKeys() {
			envKey := strings.ToUpper(key)
			if _, exists := os.LookupEnv(envKey); exists {
				continue
			}
			_ = os.Setenv(envKey, v.GetString(key))
		}
		logger.GetLogger().WithField("file", p).Info("Loaded env file")
	}
}
