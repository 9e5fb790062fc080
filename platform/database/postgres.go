package database

import (
	"github.com/go-pg/pg/v10"
	_ "github.com/go-pg/pg/v10/orm"
	"github.com/jfeng32/polypop-backend/platform/config"
)

func PostgreSQLConnection() *pg.DB {
	return pg.Connect(&pg.Options{
		User:     config.C.DBUser,
		Addr:     config.C.DBAddr,
		Password: config.C.DBPassword,
		Database: config.C.DBName,
	})
}
