package db

import (
	"gorm.io/gorm"

	"playtube.com/pkg/database"
)

var DB *gorm.DB

// Init wires the shared connection; database.Init must run first.
func Init() {
	DB = database.GormDB
}
