package db

import (
	"gorm.io/gorm"

	"playtube.com/pkg/database"
)

var DB *gorm.DB

func Init() {
	DB = database.GormDB
}
