package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Service       ServiceConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	FeatureFlags  FeatureFlagsConfig
	GCP           GCPConfig
	PubSub        PubSubConfig
	Outbox        OutboxConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MARROM_APP_ENV" required:"true"`
	Port         string `envconfig:"MARROM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MARROM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MARROM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"MARROM_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"MARROM_DB_DSN"`
	Driver string `envconfig:"MARROM_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MARROM_DB_HOST"`
	LegacyPort     int    `envconfig:"MARROM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MARROM_DB_USER"`
	LegacyPassword string `envconfig:"MARROM_DB_PASSWORD"`
	LegacyName     string `envconfig:"MARROM_DB_NAME"`
	LegacySSLMode  string `envconfig:"MARROM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MARROM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MARROM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MARROM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MARROM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MARROM_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MARROM_REDIS_ADDR"`
	Password     string        `envconfig:"MARROM_REDIS_PASSWORD"`
	DB           int           `envconfig:"MARROM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MARROM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MARROM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MARROM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MARROM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MARROM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MARROM_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MARROM_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MARROM_JWT_EXPIRATION_MINUTES" default:"480"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MARROM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MARROM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MARROM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MARROM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MARROM_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"MARROM_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"MARROM_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"MARROM_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MARROM_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MARROM_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"MARROM_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"MARROM_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"MARROM_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	OrdersTopic        string `envconfig:"MARROM_PUBSUB_ORDERS_TOPIC" default:"marrom-order-events"`
	OrdersSubscription string `envconfig:"MARROM_PUBSUB_ORDERS_SUBSCRIPTION" required:"true"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"MARROM_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"MARROM_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"MARROM_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
