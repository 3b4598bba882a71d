package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config содержит настройки приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Scheduler SchedulerConfig
	Firebase  FirebaseConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port      string
	ClientURL string
}

// AllowedOrigins возвращает список origin-ов для CORS и WebSocket
func (c *ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ClientURL, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath + "?_foreign_keys=on"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// AuthConfig - настройки проверки JWT
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Enabled сообщает, включена ли проверка токенов.
// Без секрета API работает в открытом режиме (локальная разработка).
func (c *AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// SchedulerConfig - расписание фоновых задач (cron с секундами)
type SchedulerConfig struct {
	AttendanceDigestCron string
}

// FirebaseConfig - доставка событий в FCM
type FirebaseConfig struct {
	CredentialsFile string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      getEnv("SERVER_PORT", "3000"),
			ClientURL: getEnv("CLIENT_URL", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", DriverPostgres),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "work_suite_db"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "work_suite.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getDuration("JWT_TTL", 24*time.Hour),
		},
		Scheduler: SchedulerConfig{
			AttendanceDigestCron: getEnv("ATTENDANCE_DIGEST_CRON", "0 0 18 * * *"),
		},
		Firebase: FirebaseConfig{
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		},
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
