package repo

import (
	"github.com/GlebRadaev/starsbot/internal/pg"
	duelrepo "github.com/GlebRadaev/starsbot/internal/repo/duel-repo"
	grouprepo "github.com/GlebRadaev/starsbot/internal/repo/group-repo"
	inventoryrepo "github.com/GlebRadaev/starsbot/internal/repo/inventory-repo"
	ledgerrepo "github.com/GlebRadaev/starsbot/internal/repo/ledger-repo"
	marketrepo "github.com/GlebRadaev/starsbot/internal/repo/market-repo"
	postrepo "github.com/GlebRadaev/starsbot/internal/repo/post-repo"
	promorepo "github.com/GlebRadaev/starsbot/internal/repo/promo-repo"
	settingsrepo "github.com/GlebRadaev/starsbot/internal/repo/settings-repo"
	userrepo "github.com/GlebRadaev/starsbot/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/starsbot/internal/repo/withdrawal-repo"
)

type Repositories struct {
	TxManager  pg.TXManager
	UserRepo   *userrepo.Repository
	Withdrawal *withdrawalrepo.Repository
	Ledger     *ledgerrepo.Repository
	Settings   *settingsrepo.Repository
	Promo      *promorepo.Repository
	Inventory  *inventoryrepo.Repository
	Market     *marketrepo.Repository
	Post       *postrepo.Repository
	Group      *grouprepo.Repository
	Duel       *duelrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:  txManager,
		UserRepo:   userrepo.New(conn),
		Withdrawal: withdrawalrepo.New(conn),
		Ledger:     ledgerrepo.New(conn),
		Settings:   settingsrepo.New(conn),
		Promo:      promorepo.New(conn),
		Inventory:  inventoryrepo.New(conn),
		Market:     marketrepo.New(conn),
		Post:       postrepo.New(conn),
		Group:      grouprepo.New(conn),
		Duel:       duelrepo.New(conn),
	}
}
