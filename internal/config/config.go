package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション設定を表す
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Booking  BookingConfig
	Worker   WorkerConfig
	Metrics  MetricsConfig
}

// AppConfig はアプリケーション全体の設定
type AppConfig struct {
	Env      string
	LogLevel string
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig はデータベース設定
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig はRedis設定。Enabled が false の場合はロックとキャッシュを使わない
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// TheatreSeed はシードする劇場1件
type TheatreSeed struct {
	Name     string
	Location string
}

// BookingConfig は予約エンジンの参照データと動作設定
type BookingConfig struct {
	Theatres         []TheatreSeed
	TimeSlots        []string
	UnitPrice        int
	SchemaVersion    uint
	ScheduleCacheTTL time.Duration
	LockTTL          time.Duration
	LockRetries      int
	LockRetryDelay   time.Duration
}

// WorkerConfig はバックグラウンドワーカーの設定
type WorkerConfig struct {
	// CompactInterval が0の場合は重複タイトル整理を定期実行しない
	CompactInterval time.Duration
}

// MetricsConfig は /metrics の設定。User が空の場合は認証なし
type MetricsConfig struct {
	User     string
	Password string
}

// 既定の参照データ
var (
	defaultTheatreRoster = "Rajah=Jaffna;CineCity Cinema=Maradana;CPVR Cinema=One Galle Face Mall;Regal Cinema=Jaffna;Samantha Cinema=Dematagoda"
	defaultTimeSlots     = "10:00 AM,01:30 PM,06:00 PM,09:00 PM"
)

var ErrInvalidConfig = errors.New("設定が不正です")

// LoadDotEnv は .env ファイルを読み込む。既に設定済みの環境変数は上書きしない。
// ファイルが存在しない場合は何もしない
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf(".env の読み込みに失敗しました: %w", err)
	}
	return nil
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", ""),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: loadDatabaseConfig(),
		Redis:    loadRedisConfig(),
		Booking: BookingConfig{
			TimeSlots:        splitList(getEnv("SHOW_TIME_SLOTS", defaultTimeSlots), ","),
			UnitPrice:        getIntEnv("SEAT_UNIT_PRICE", 1000),
			SchemaVersion:    uint(getIntEnv("SCHEMA_VERSION", 7)),
			ScheduleCacheTTL: getDurationEnv("SCHEDULE_CACHE_TTL", 10*time.Minute),
			LockTTL:          getDurationEnv("BOOKING_LOCK_TTL", 10*time.Second),
			LockRetries:      getIntEnv("BOOKING_LOCK_RETRIES", 3),
			LockRetryDelay:   getDurationEnv("BOOKING_LOCK_RETRY_DELAY", 100*time.Millisecond),
		},
		Worker: WorkerConfig{
			CompactInterval: getDurationEnv("CATALOG_COMPACT_INTERVAL", time.Hour),
		},
		Metrics: MetricsConfig{
			User:     getEnv("METRICS_USER", ""),
			Password: getEnv("METRICS_PASSWORD", ""),
		},
	}

	theatres, err := ParseTheatreRoster(getEnv("THEATRE_ROSTER", defaultTheatreRoster))
	if err != nil {
		return nil, err
	}
	cfg.Booking.Theatres = theatres

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を検証する
func (c *Config) Validate() error {
	if len(c.Booking.Theatres) == 0 {
		return fmt.Errorf("%w: THEATRE_ROSTER が空です", ErrInvalidConfig)
	}
	if len(c.Booking.TimeSlots) == 0 {
		return fmt.Errorf("%w: SHOW_TIME_SLOTS が空です", ErrInvalidConfig)
	}
	if c.Booking.UnitPrice <= 0 {
		return fmt.Errorf("%w: SEAT_UNIT_PRICE は1以上である必要があります", ErrInvalidConfig)
	}
	if c.Booking.SchemaVersion == 0 {
		return fmt.Errorf("%w: SCHEMA_VERSION は1以上である必要があります", ErrInvalidConfig)
	}
	return nil
}

// ParseTheatreRoster は "名前=所在地;名前=所在地" 形式の劇場一覧を解析する
func ParseTheatreRoster(s string) ([]TheatreSeed, error) {
	var roster []TheatreSeed
	for _, entry := range splitList(s, ";") {
		name, location, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: 劇場の指定 %q は 名前=所在地 の形式で指定してください", ErrInvalidConfig, entry)
		}
		roster = append(roster, TheatreSeed{Name: name, Location: strings.TrimSpace(location)})
	}
	return roster, nil
}

func loadDatabaseConfig() DatabaseConfig {
	cfg := DatabaseConfig{
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         getEnv("DB_PORT", "5433"),
		User:         getEnv("DB_USER", "postgres"),
		Password:     getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "cinema_booking"),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
	}

	// DATABASE_URL が設定されている場合は個別設定より優先する
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		u, err := url.Parse(raw)
		if err == nil && u.Host != "" {
			cfg.Host = u.Hostname()
			if p := u.Port(); p != "" {
				cfg.Port = p
			}
			cfg.User = u.User.Username()
			cfg.Password, _ = u.User.Password()
			cfg.DBName = strings.TrimPrefix(u.Path, "/")
			cfg.SSLMode = u.Query().Get("sslmode")
			if cfg.SSLMode == "" {
				cfg.SSLMode = "require"
			}
		}
	}
	return cfg
}

func loadRedisConfig() RedisConfig {
	cfg := RedisConfig{
		Enabled:  getBoolEnv("REDIS_ENABLED", true),
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getIntEnv("REDIS_DB", 0),
	}

	if raw := os.Getenv("REDIS_URL"); raw != "" {
		u, err := url.Parse(raw)
		if err == nil && u.Host != "" {
			cfg.Host = u.Hostname()
			if p := u.Port(); p != "" {
				cfg.Port = p
			}
			if pw, ok := u.User.Password(); ok {
				cfg.Password = pw
			}
			// redis://host:port/2 のパスはDB番号
			if db := strings.TrimPrefix(u.Path, "/"); db != "" {
				if n, err := strconv.Atoi(db); err == nil {
					cfg.DB = n
				}
			}
		}
	}
	return cfg
}

// DSN はPostgreSQL接続文字列を返す。空白や引用符を含む値も扱えるよう各値を引用する
func (c *DatabaseConfig) DSN() string {
	pairs := []struct{ key, value string }{
		{"host", c.Host},
		{"port", c.Port},
		{"user", c.User},
		{"password", c.Password},
		{"dbname", c.DBName},
		{"sslmode", c.SSLMode},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+quoteDSNValue(p.value))
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue は libpq の key=value 形式に合わせて値を単一引用符で囲む
func quoteDSNValue(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

// Addr はRedis接続アドレスを返す
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func splitList(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
