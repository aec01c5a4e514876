package env

import (
	"os"

	"github.com/spf13/viper"
)

// PodName example: k8ssta-auction-crawler-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName prefers ENV_NAME and falls back to env_name in the loaded config
func EnvName() string {
	return lookup("ENV_NAME", "env_name")
}

// AppName prefers APP_NAME and falls back to app_name in the loaded config
func AppName() string {
	return lookup("APP_NAME", "app_name")
}

func lookup(envKey, cfgKey string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return viper.GetString(cfgKey)
}
