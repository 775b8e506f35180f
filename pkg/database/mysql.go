package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
	"playtube.com/config"
)

var GormDB *gorm.DB

// Init opens the shared MySQL connection and migrates the schema. Domain DAL
// packages pick the handle up through their own Init.
func Init() {
	c := config.ConfigInfo.Mysql
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Addr, c.Database, c.Charset)

	var err error
	GormDB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}

	if err = GormDB.AutoMigrate(
		&model.User{},
		&model.WatchRecord{},
		&model.Video{},
		&model.Comment{},
		&model.Post{},
		&model.Like{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	); err != nil {
		panic(err)
	}
}
