package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/carson-networks/sms-ledger/internal/config"
	"github.com/carson-networks/sms-ledger/internal/storage/sqlconfig"
)

type Storage struct {
	DB    *sql.DB
	Items sqlconfig.IItemsTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	items := sqlconfig.NewItemsTable(db)

	return &Storage{
		DB:    db,
		Items: &items,
	}
}
