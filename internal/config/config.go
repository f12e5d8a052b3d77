package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/footyclub/records/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service. An empty DBURL selects
// the seeded in-memory store, which is the dev default.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	DBURL          string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	InternalJobToken string

	MinGamesForAveragesTable int
	MinRepliesForSpeedyTable int
	RecomputeWorkers         int

	MetricsEnabled bool

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	minGamesForAverages, err := getEnvAsInt("MIN_GAMES_FOR_AVERAGES_TABLE", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse MIN_GAMES_FOR_AVERAGES_TABLE: %w", err)
	}
	if minGamesForAverages < 1 {
		return Config{}, fmt.Errorf("MIN_GAMES_FOR_AVERAGES_TABLE must be >= 1")
	}

	minRepliesForSpeedy, err := getEnvAsInt("MIN_REPLIES_FOR_SPEEDY_TABLE", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse MIN_REPLIES_FOR_SPEEDY_TABLE: %w", err)
	}
	if minRepliesForSpeedy < 1 {
		return Config{}, fmt.Errorf("MIN_REPLIES_FOR_SPEEDY_TABLE must be >= 1")
	}

	recomputeWorkers, err := getEnvAsInt("RECOMPUTE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse RECOMPUTE_WORKERS: %w", err)
	}
	if recomputeWorkers < 1 {
		return Config{}, fmt.Errorf("RECOMPUTE_WORKERS must be >= 1")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "footy-records"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		InternalJobToken:           strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		MinGamesForAveragesTable:   minGamesForAverages,
		MinRepliesForSpeedyTable:   minRepliesForSpeedy,
		RecomputeWorkers:           recomputeWorkers,
		MetricsEnabled:             metricsEnabled,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if cfg.AppEnv == EnvProd && cfg.InternalJobToken == "" {
		return Config{}, fmt.Errorf("INTERNAL_JOB_TOKEN is required when APP_ENV=prod")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
