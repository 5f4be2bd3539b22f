package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// 기본 설정값
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultGinMode         = gin.ReleaseMode
	DefaultShutdownTimeout = 30 * time.Second
	DefaultEnvFile         = ".env"
)

// Config - 서비스 런타임 설정
type Config struct {
	Port            string
	LogLevel        string
	GinMode         string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// LoadConfig - 환경 변수에서 설정 로드 (.env 파일이 있으면 먼저 적용)
func LoadConfig() (*Config, error) {
	return LoadConfigFile(DefaultEnvFile)
}

// LoadConfigFile loads envFile if it exists, then reads the environment.
// Variables already set in the process environment take precedence.
func LoadConfigFile(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	config := &Config{
		Port:            getEnv("PORT", DefaultPort),
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
		GinMode:         getEnv("GIN_MODE", DefaultGinMode),
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	port, err := strconv.Atoi(config.Port)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT 값이 올바르지 않음: %q", config.Port)
	}

	switch config.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE 값이 올바르지 않음: %q", config.GinMode)
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT 파싱 실패: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT은 양수여야 함: %s", raw)
		}
		config.ShutdownTimeout = d
	}

	return config, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%s 파일 로드 실패: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
