package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	env_utils "mhlogs/internal/util/env"
	"mhlogs/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting bool
	EnvMode   env_utils.EnvMode `env:"ENV_MODE"                     env-default:"development"`
	// opensearch
	OpenSearchHosts string `env:"MHLOGS_OPENSEARCH_HOSTS"      env-default:"http://localhost:9200"`
	IndexPrefix     string `env:"MHLOGS_INDEX_PREFIX"          env-default:"mh-logs"`
	TimeoutSeconds  int    `env:"MHLOGS_TIMEOUT_SECONDS"       env-default:"30"`
	// gateway
	IsAPIKeyRequired   bool   `env:"MHLOGS_API_KEY_REQUIRED"      env-default:"false"`
	AdminKey           string `env:"MHLOGS_ADMIN_KEY"             env-default:""`
	LogsPerSecondLimit int    `env:"MHLOGS_LOGS_PER_SECOND_LIMIT" env-default:"0"`
	// cache
	ValkeyHost     string `env:"VALKEY_HOST"                  env-default:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT"                  env-default:"6379"`
	ValkeyUsername string `env:"VALKEY_USERNAME"              env-default:""`
	ValkeyPassword string `env:"VALKEY_PASSWORD"              env-default:""`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"                env-default:"false"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

// OpenSearchHostList splits the comma-separated hosts variable,
// trimming whitespace and trailing slashes.
func (e EnvVariables) OpenSearchHostList() []string {
	parts := strings.Split(e.OpenSearchHosts, ",")

	hosts := make([]string, 0, len(parts))
	for _, part := range parts {
		host := strings.TrimRight(strings.TrimSpace(part), "/")
		if host != "" {
			hosts = append(hosts, host)
		}
	}

	return hosts
}

func (e EnvVariables) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	rootPath := cwd
	for {
		if _, err := os.Stat(filepath.Join(rootPath, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(rootPath)
		if parent == rootPath {
			break
		}

		rootPath = parent
	}

	// .env is optional: every variable has a usable default for local runs
	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(rootPath, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if !env.EnvMode.IsValid() {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if len(env.OpenSearchHostList()) == 0 {
		log.Error("MHLOGS_OPENSEARCH_HOSTS is empty")
		os.Exit(1)
	}

	if env.TimeoutSeconds <= 0 {
		log.Error("MHLOGS_TIMEOUT_SECONDS must be positive", "seconds", env.TimeoutSeconds)
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}
