package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Relay      RelayConfig      `mapstructure:"relay"`
	Encryption EncryptionConfig `mapstructure:"encryption"`
	Workflow   WorkflowConfig   `mapstructure:"workflow"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kols       KolsConfig       `mapstructure:"kols"`
	Decrypt    DecryptConfig    `mapstructure:"decrypt"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"` // debug, release, test
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type ChainConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ChainID         uint64 `mapstructure:"chain_id"`
	NetworkName     string `mapstructure:"network_name"`
	ExplorerURL     string `mapstructure:"explorer_url"`
	PrivateKey      string `mapstructure:"private_key"` // hex, with or without 0x
	ContractAddress string `mapstructure:"contract_address"`
}

// TxURL returns the block explorer link for a transaction hash.
func (c ChainConfig) TxURL(txHash string) string {
	return strings.TrimRight(c.ExplorerURL, "/") + "/tx/" + txHash
}

type RelayConfig struct {
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	VerifyBinding  bool          `mapstructure:"verify_binding"`
	IdempotencyTTL time.Duration `mapstructure:"idempotency_ttl"`
	HandleClaimTTL time.Duration `mapstructure:"handle_claim_ttl"` // 0 keeps relayed handles claimed forever
}

type EncryptionConfig struct {
	Backend string `mapstructure:"backend"` // mock, sealed
	Key     string `mapstructure:"key"`     // 32-byte hex-encoded key for the sealed backend
}

type WorkflowConfig struct {
	Strategy       string        `mapstructure:"strategy"` // relay, direct
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	NoticeTTL      time.Duration `mapstructure:"notice_ttl"`
	BusyTTL        time.Duration `mapstructure:"busy_ttl"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // memory, redis, postgres
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type KolsConfig struct {
	File string `mapstructure:"file"` // optional YAML/JSON replacement for the built-in table
}

type DecryptConfig struct {
	// PublicContracts lists contracts whose handles anyone may decrypt
	// without a signed grant. Empty disables public decryption.
	PublicContracts []string `mapstructure:"public_contracts"`
}

// legacyEnv maps config keys to the variable names the front-end deployment
// already uses. The TIPS_ name wins when both are set.
var legacyEnv = map[string]string{
	"chain.rpc_url":          "RPC_URL",
	"chain.private_key":      "PRIVATE_KEY",
	"chain.chain_id":         "CHAIN_ID",
	"chain.contract_address": "NEXT_PUBLIC_TIPS_CONTRACT_ADDRESS",
}

// LoadDotEnv loads a .env file into the process environment if present.
// Variables already set are not overwritten.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TIPS_.
// Nested keys use underscore: TIPS_CHAIN_RPC_URL, TIPS_REDIS_HOST, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("chain.rpc_url", "https://ethereum-sepolia-rpc.publicnode.com")
	v.SetDefault("chain.chain_id", 11155111)
	v.SetDefault("chain.network_name", "Sepolia")
	v.SetDefault("chain.explorer_url", "https://sepolia.etherscan.io")
	v.SetDefault("chain.private_key", "")
	v.SetDefault("chain.contract_address", "0x0000000000000000000000000000000000000000")
	v.SetDefault("relay.confirm_timeout", "2m")
	v.SetDefault("relay.poll_interval", "2s")
	v.SetDefault("relay.verify_binding", true)
	v.SetDefault("relay.idempotency_ttl", "24h")
	v.SetDefault("relay.handle_claim_ttl", "720h")
	v.SetDefault("encryption.backend", "mock")
	v.SetDefault("encryption.key", "")
	v.SetDefault("workflow.strategy", "relay")
	v.SetDefault("workflow.confirm_timeout", "2m")
	v.SetDefault("workflow.notice_ttl", "5s")
	v.SetDefault("workflow.busy_ttl", "5m")
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "private_tips")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kols.file", "")
	v.SetDefault("decrypt.public_contracts", []string{})

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TIPS_CHAIN_RPC_URL -> chain.rpc_url
	v.SetEnvPrefix("TIPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := "TIPS_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects option values no component understands.
func (c *Config) Validate() error {
	switch c.Encryption.Backend {
	case "mock", "sealed":
	default:
		return fmt.Errorf("encryption.backend: unknown backend %q", c.Encryption.Backend)
	}
	switch c.Workflow.Strategy {
	case "relay", "direct":
	default:
		return fmt.Errorf("workflow.strategy: unknown strategy %q", c.Workflow.Strategy)
	}
	switch c.Storage.Driver {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "redis" && !c.Redis.Enabled {
		return errors.New("storage.driver redis requires redis.enabled")
	}
	if c.Chain.ChainID == 0 {
		return errors.New("chain.chain_id must be set")
	}
	for _, addr := range c.Decrypt.PublicContracts {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("decrypt.public_contracts: invalid address %q", addr)
		}
	}
	return nil
}
