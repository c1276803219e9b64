// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver             string        `mapstructure:"DB_DRIVER"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL"`
	ServerAddress        string        `mapstructure:"SERVER_ADDRESS"`
	TokenType            string        `mapstructure:"TOKEN_TYPE"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environment          string        `mapstructure:"GO_ENV"`
	APIRatePerSecond     float64       `mapstructure:"API_RATE_PER_SECOND"`
	APIRateBurst         int           `mapstructure:"API_RATE_BURST"`

	AdminIdentity    string `mapstructure:"ADMIN_IDENTITY"`
	ExecutorIdentity string `mapstructure:"EXECUTOR_IDENTITY"`
	LedgerIdentity   string `mapstructure:"LEDGER_IDENTITY"`

	MinDepositAmount string        `mapstructure:"MIN_DEPOSIT_AMOUNT"`
	MaxSaveAmount    string        `mapstructure:"MAX_SAVE_AMOUNT"`
	MinSaveInterval  time.Duration `mapstructure:"MIN_SAVE_INTERVAL"`

	StrategyProfile      string `mapstructure:"STRATEGY_PROFILE"`
	MinSaveAmount        string `mapstructure:"MIN_SAVE_AMOUNT"`
	MaxSavePercentageBps int64  `mapstructure:"MAX_SAVE_PERCENTAGE_BPS"`
	AutomationCron       string `mapstructure:"AUTOMATION_CRON"`
	AutomationPageSize   int32  `mapstructure:"AUTOMATION_PAGE_SIZE"`

	SettlementURL        string        `mapstructure:"SETTLEMENT_URL"`
	PoolURL              string        `mapstructure:"POOL_URL"`
	PoolRoutingEnabled   bool          `mapstructure:"POOL_ROUTING_ENABLED"`
	SlippageToleranceBps int64         `mapstructure:"SLIPPAGE_TOLERANCE_BPS"`
	CollaboratorTimeout  time.Duration `mapstructure:"COLLABORATOR_TIMEOUT"`
}

// IsDevelopment reports whether the app runs in the development environment.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func setDefaults(v *viper.Viper) {
	// Keys without a meaningful default still need registering for AutomaticEnv to see them.
	for _, key := range []string{"DB_SOURCE", "TOKEN_SYMMETRIC_KEY", "ADMIN_IDENTITY",
		"EXECUTOR_IDENTITY", "SETTLEMENT_URL", "POOL_URL", "POOL_ROUTING_ENABLED"} {
		v.SetDefault(key, "")
	}

	v.SetDefault("DB_DRIVER", "memory")
	v.SetDefault("MIGRATION_URL", "file://db/migration")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("TOKEN_TYPE", "paseto")
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("API_RATE_PER_SECOND", 10.0)
	v.SetDefault("API_RATE_BURST", 20)
	v.SetDefault("LEDGER_IDENTITY", "ledger")
	v.SetDefault("MIN_DEPOSIT_AMOUNT", "1")
	v.SetDefault("MAX_SAVE_AMOUNT", "10000")
	v.SetDefault("MIN_SAVE_INTERVAL", 24*time.Hour)
	v.SetDefault("STRATEGY_PROFILE", "balanced")
	v.SetDefault("MIN_SAVE_AMOUNT", "1")
	v.SetDefault("MAX_SAVE_PERCENTAGE_BPS", 5000)
	v.SetDefault("AUTOMATION_CRON", "0 */30 * * * *")
	v.SetDefault("AUTOMATION_PAGE_SIZE", 100)
	v.SetDefault("SLIPPAGE_TOLERANCE_BPS", 50)
	v.SetDefault("COLLABORATOR_TIMEOUT", 10*time.Second)
}

// Load reads configuration from file or environment variables.
//
// A missing app.env file is not an error: defaults and the environment are used instead.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}
