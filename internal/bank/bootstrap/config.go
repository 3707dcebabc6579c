package bootstrap

import (
	"flag"
	"fmt"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/pkg/database"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type BankConfig struct {
	ListenAddr string `env:"BANK_LISTEN_ADDR" env-default:":3000"`
	AdminAddr  string `env:"BANK_ADMIN_ADDR"`
	AdminToken string `env:"BANK_ADMIN_TOKEN"`

	Store      string `env:"BANK_STORE" env-default:"memory"`
	DbSettings database.PostgresSettings

	PrivateKeyPath string `env:"BANK_PRIVATE_KEY" env-default:"keys/private.pem"`
	PublicKeyPath  string `env:"BANK_PUBLIC_KEY" env-default:"keys/public.pem"`
	GenerateKeys   bool   `env:"BANK_GENERATE_KEYS" env-default:"true"`

	SeedFile string `env:"BANK_SEED_FILE"`
	NatsURL  string `env:"NATS_URL"`

	MaxFrameSize int           `env:"BANK_MAX_FRAME_SIZE" env-default:"65536"`
	IdleTimeout  time.Duration `env:"BANK_IDLE_TIMEOUT" env-default:"10m"`
}

// LoadConfig reads the environment first. Command line flags override it.
func LoadConfig(args []string) (BankConfig, error) {
	var cfg BankConfig

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return BankConfig{}, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	flags := flag.NewFlagSet("bank", flag.ContinueOnError)
	flags.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address of the bank TCP endpoint")
	flags.StringVar(&cfg.AdminAddr, "admin", cfg.AdminAddr, "address of the admin HTTP endpoint, disabled when empty")
	flags.StringVar(&cfg.Store, "store", cfg.Store, "account store: memory or postgres")
	flags.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "CSV file with username,password,balance rows")

	if err := flags.Parse(args); err != nil {
		return BankConfig{}, err
	}

	if err := cfg.validate(); err != nil {
		return BankConfig{}, err
	}

	return cfg, nil
}

func (c BankConfig) validate() error {
	if c.Store != StoreMemory && c.Store != StorePostgres {
		return fmt.Errorf("unknown store %q, want %s or %s", c.Store, StoreMemory, StorePostgres)
	}

	if c.AdminAddr != "" && c.AdminToken == "" {
		return fmt.Errorf("BANK_ADMIN_TOKEN is required when the admin endpoint is enabled")
	}

	if c.MaxFrameSize <= 0 {
		return fmt.Errorf("max frame size must be positive")
	}

	return nil
}
