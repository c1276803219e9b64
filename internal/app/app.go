// Package app wires repositories, collaborators and services from configuration.
package app

import (
	"database/sql"
	"fmt"

	"github.com/go-petr/pet-savings/internal/accountrepo"
	"github.com/go-petr/pet-savings/internal/accountservice"
	"github.com/go-petr/pet-savings/internal/adminservice"
	"github.com/go-petr/pet-savings/internal/automation"
	"github.com/go-petr/pet-savings/internal/decisionengine"
	"github.com/go-petr/pet-savings/internal/eventrepo"
	"github.com/go-petr/pet-savings/internal/memstore"
	"github.com/go-petr/pet-savings/internal/poolclient"
	"github.com/go-petr/pet-savings/internal/poolservice"
	"github.com/go-petr/pet-savings/internal/positionrepo"
	"github.com/go-petr/pet-savings/internal/settlementclient"
	"github.com/go-petr/pet-savings/internal/userrepo"
	"github.com/go-petr/pet-savings/internal/userservice"
	"github.com/go-petr/pet-savings/pkg/configpkg"
	"github.com/go-petr/pet-savings/pkg/dbpkg"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
	"github.com/go-petr/pet-savings/pkg/tokenpkg"

	// Postgres driver for database/sql.
	_ "github.com/lib/pq"
)

// DriverMemory selects the in-memory stores.
const DriverMemory = "memory"

// Wallets is the settlement layer as seen by the ledger and the automation runner.
type Wallets interface {
	accountservice.Settlement
	automation.Wallets
}

// App holds the wired services.
type App struct {
	DB         *sql.DB
	Admin      *adminservice.Service
	Ledger     *accountservice.Service
	Pool       *poolservice.Service // nil without a pool URL
	Users      *userservice.Service
	Wallets    Wallets
	Automation *automation.Runner
	TokenMaker tokenpkg.Maker
}

type stores struct {
	accounts  accountservice.Repo
	positions poolservice.Repo
	events    accountservice.Recorder
	users     userservice.Repo
}

func memoryStores() stores {
	return stores{
		accounts:  memstore.NewAccounts(),
		positions: memstore.NewPositions(),
		events:    memstore.NewEvents(),
		users:     memstore.NewUsers(),
	}
}

func postgresStores(db *sql.DB) stores {
	return stores{
		accounts:  accountrepo.NewRepoPGS(db),
		positions: positionrepo.NewRepoPGS(db),
		events:    eventrepo.NewRepoPGS(db),
		users:     userrepo.NewRepoPGS(db),
	}
}

// EngineConfig parses the decision engine settings.
func EngineConfig(config configpkg.Config) (decisionengine.Config, error) {
	minSave, err := moneypkg.Parse(config.MinSaveAmount)
	if err != nil {
		return decisionengine.Config{}, fmt.Errorf("MIN_SAVE_AMOUNT: %w", err)
	}

	return decisionengine.Config{
		MinSaveAmount:        minSave,
		MaxSavePercentageBps: config.MaxSavePercentageBps,
	}, nil
}

func ledgerConfig(config configpkg.Config) (accountservice.Config, error) {
	minDeposit, err := moneypkg.Parse(config.MinDepositAmount)
	if err != nil {
		return accountservice.Config{}, fmt.Errorf("MIN_DEPOSIT_AMOUNT: %w", err)
	}

	maxSave, err := moneypkg.Parse(config.MaxSaveAmount)
	if err != nil {
		return accountservice.Config{}, fmt.Errorf("MAX_SAVE_AMOUNT: %w", err)
	}

	return accountservice.Config{
		LedgerIdentity:     config.LedgerIdentity,
		MinDepositAmount:   minDeposit,
		MaxSaveAmount:      maxSave,
		MinSaveInterval:    config.MinSaveInterval,
		PoolRoutingEnabled: config.PoolRoutingEnabled,
	}, nil
}

// New builds the application. With DB_DRIVER=memory no database is opened and state
// lives for the lifetime of the process; otherwise the database must be migrated.
func New(config configpkg.Config) (*App, error) {
	ledgerCfg, err := ledgerConfig(config)
	if err != nil {
		return nil, err
	}

	engineCfg, err := EngineConfig(config)
	if err != nil {
		return nil, err
	}

	profile, err := decisionengine.ParseProfile(config.StrategyProfile)
	if err != nil {
		return nil, err
	}

	tokenMaker, err := tokenpkg.NewMaker(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	a := &App{TokenMaker: tokenMaker}

	var st stores
	if config.DBDriver == DriverMemory {
		st = memoryStores()
	} else {
		a.DB, err = dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to database: %w", err)
		}

		st = postgresStores(a.DB)
	}

	if config.SettlementURL != "" {
		a.Wallets = settlementclient.New(config.SettlementURL, config.CollaboratorTimeout)
	} else {
		a.Wallets = settlementclient.Noop{}
	}

	a.Admin = adminservice.New(config.AdminIdentity, config.ExecutorIdentity, st.events)
	a.Ledger = accountservice.New(st.accounts, a.Wallets, a.Admin, st.events, ledgerCfg)
	a.Users = userservice.New(st.users, tokenMaker, config.AccessTokenDuration)

	if config.PoolURL != "" {
		pool := poolclient.New(config.PoolURL, config.CollaboratorTimeout)

		a.Pool, err = poolservice.New(st.positions, pool, a.Admin, st.events, config.LedgerIdentity, config.SlippageToleranceBps)
		if err != nil {
			a.Close()
			return nil, err
		}

		a.Ledger.BindPool(a.Pool)
	}

	a.Automation = automation.New(a.Ledger, a.Wallets, a.Admin, automation.Config{
		Profile:  profile,
		Engine:   engineCfg,
		PageSize: config.AutomationPageSize,
	})

	return a, nil
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}

	return a.DB.Close()
}
