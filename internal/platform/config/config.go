package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/platform/logger"
)

// Config es la configuración completa del proceso.
// Cada clave se puede pisar por env: server.port -> SERVER_PORT.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Remote      RemoteConfig      `mapstructure:"remote"`
	Log         logger.Config     `mapstructure:"log"`
	Demo        DemoConfig        `mapstructure:"demo"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Reconcile   ReconcileConfig   `mapstructure:"reconcile"`
}

type ServerConfig struct {
	Port string `mapstructure:"port" default:"8080"`
}

type RemoteConfig struct {
	BaseURL        string `mapstructure:"base_url" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"10"`
	HealthPath     string `mapstructure:"health_path" default:"health"`
}

func (c RemoteConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DemoConfig: Enabled reemplaza el backend por datos de ejemplo.
type DemoConfig struct {
	Enabled bool `mapstructure:"enabled" default:"false"`
}

const (
	CredentialsMemory = "memory"
	CredentialsRedis  = "redis"
)

type CredentialsConfig struct {
	Backend    string `mapstructure:"backend" default:"memory"`
	RedisURL   string `mapstructure:"redis_url" default:""`
	TokenKey   string `mapstructure:"token_key" default:"token"`
	SessionKey string `mapstructure:"session_key" default:"user"`
	// Valores iniciales para el backend memory.
	Token   string `mapstructure:"token" default:""`
	Session string `mapstructure:"session" default:""`
}

// UsesRedis reporta si las credenciales se leen de Redis.
func (c CredentialsConfig) UsesRedis() bool {
	return strings.EqualFold(strings.TrimSpace(c.Backend), CredentialsRedis)
}

// ReconcileConfig permite endurecer la única operación tolerante.
type ReconcileConfig struct {
	CompleteReminder string `mapstructure:"complete_reminder" default:"degraded"`
}

func (c ReconcileConfig) Policies() reconcile.Policies {
	return reconcile.DefaultPolicies().With(reconcile.OpCompleteReminder, reconcile.ParsePolicy(c.CompleteReminder))
}

// LoadConfig carga .env (si existe) y luego variables de entorno.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." || path == "" {
		envPath = ".env"
	}

	// en producción no hay .env
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues registra cada clave con su default (tag `default`) para que AutomaticEnv la vea.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
