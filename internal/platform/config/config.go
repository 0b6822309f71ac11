package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Keys de viper. Los flags de la CLI se enlazan a estas mismas keys.
const (
	KeyPort       = "server.port"
	KeyDriver     = "storage.driver"
	KeyDSN        = "storage.dsn"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyAppName    = "log.app"
	KeySeedOwners = "seed.owners"
	KeySeedPets   = "seed.pets"
	KeySeedRand   = "seed.rand"
)

// env conserva los nombres de variables que ya se usaban (PORT, DB_DSN, LOG_*).
var env = map[string]string{
	KeyPort:       "PORT",
	KeyDriver:     "DB_DRIVER",
	KeyDSN:        "DB_DSN",
	KeyLogLevel:   "LOG_LEVEL",
	KeyLogFormat:  "LOG_FORMAT",
	KeyAppName:    "APP_NAME",
	KeySeedOwners: "SEED_OWNERS",
	KeySeedPets:   "SEED_PETS",
	KeySeedRand:   "SEED_RAND",
}

type Config struct {
	Port    int
	Storage Storage
	Log     Log
	Seed    Seed
}

type Storage struct {
	Driver string
	DSN    string
}

type Log struct {
	Level  string
	Format string
	App    string
}

type Seed struct {
	Owners int
	Pets   int
	// Rand es la semilla del generador; 0 = aleatoria.
	Rand uint64
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// New arma un viper con defaults y env; sin archivo todavía.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, 5555)
	v.SetDefault(KeyDriver, DriverSQLite)
	v.SetDefault(KeyDSN, "app.db")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyAppName, "pet-owner-directory")
	v.SetDefault(KeySeedOwners, 50)
	v.SetDefault(KeySeedPets, 100)
	v.SetDefault(KeySeedRand, 0)

	for key, name := range env {
		_ = v.BindEnv(key, name)
	}
	return v
}

// Load lee el archivo (si path no es vacío) sobre v y devuelve la config validada.
// Sin path busca config.yaml en el directorio actual; que no exista no es error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port: v.GetInt(KeyPort),
		Storage: Storage{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString(KeyDriver))),
			DSN:    strings.TrimSpace(v.GetString(KeyDSN)),
		},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			App:    v.GetString(KeyAppName),
		},
		Seed: Seed{
			Owners: v.GetInt(KeySeedOwners),
			Pets:   v.GetInt(KeySeedPets),
			Rand:   v.GetUint64(KeySeedRand),
		},
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage driver %q requires a dsn", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Seed.Owners < 0 || c.Seed.Pets < 0 {
		return errors.New("seed counts must not be negative")
	}
	return nil
}
