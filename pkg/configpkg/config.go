// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	MigrationsDir       string        `mapstructure:"MIGRATIONS_DIR"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenType           string        `mapstructure:"TOKEN_TYPE"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environement        string        `mapstructure:"GO_ENV"`
	StoreTimeout        time.Duration `mapstructure:"STORE_TIMEOUT"`

	LoanToDepositRatio string `mapstructure:"LOAN_TO_DEPOSIT_RATIO"`
	LoanMinPrincipal   string `mapstructure:"LOAN_MIN_PRINCIPAL"`
	LoanMinBalance     string `mapstructure:"LOAN_MIN_BALANCE"`

	DefaultGracePeriod        time.Duration `mapstructure:"DEFAULT_GRACE_PERIOD"`
	CapacityRecomputeSchedule string        `mapstructure:"CAPACITY_RECOMPUTE_SCHEDULE"`
	OverdueSweepSchedule      string        `mapstructure:"OVERDUE_SWEEP_SCHEDULE"`
	ReconcileBatchSize        int32         `mapstructure:"RECONCILE_BATCH_SIZE"`
}

// Lending holds the parsed lending policy.
type Lending struct {
	Ratio        decimal.Decimal
	MinPrincipal decimal.Decimal
	MinBalance   decimal.Decimal
}

// Lending parses the decimal lending settings. The ratio must be positive
// and the floors must not be negative.
func (c Config) Lending() (Lending, error) {
	var (
		l   Lending
		err error
	)

	if l.Ratio, err = decimal.NewFromString(c.LoanToDepositRatio); err != nil {
		return l, fmt.Errorf("LOAN_TO_DEPOSIT_RATIO: %w", err)
	}

	if !l.Ratio.IsPositive() {
		return l, fmt.Errorf("LOAN_TO_DEPOSIT_RATIO must be positive, got %s", l.Ratio)
	}

	if l.MinPrincipal, err = decimal.NewFromString(c.LoanMinPrincipal); err != nil {
		return l, fmt.Errorf("LOAN_MIN_PRINCIPAL: %w", err)
	}

	if l.MinPrincipal.IsNegative() {
		return l, fmt.Errorf("LOAN_MIN_PRINCIPAL must not be negative, got %s", l.MinPrincipal)
	}

	if l.MinBalance, err = decimal.NewFromString(c.LoanMinBalance); err != nil {
		return l, fmt.Errorf("LOAN_MIN_BALANCE: %w", err)
	}

	if l.MinBalance.IsNegative() {
		return l, fmt.Errorf("LOAN_MIN_BALANCE must not be negative, got %s", l.MinBalance)
	}

	return l, nil
}

func setDefaults() {
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("MIGRATIONS_DIR", "./configs/db/migration")
	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("TOKEN_TYPE", "paseto")
	viper.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	viper.SetDefault("STORE_TIMEOUT", 5*time.Second)
	viper.SetDefault("LOAN_TO_DEPOSIT_RATIO", "0.5")
	viper.SetDefault("LOAN_MIN_PRINCIPAL", "100")
	viper.SetDefault("LOAN_MIN_BALANCE", "0")
	viper.SetDefault("DEFAULT_GRACE_PERIOD", 30*24*time.Hour)
	viper.SetDefault("CAPACITY_RECOMPUTE_SCHEDULE", "0 0 * * *")
	viper.SetDefault("OVERDUE_SWEEP_SCHEDULE", "0 1 * * *")
	viper.SetDefault("RECONCILE_BATCH_SIZE", 100)
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	setDefaults()

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	if _, err := c.Lending(); err != nil {
		return c, err
	}

	return c, nil
}
