package db

import (
	"PlayTube.com/cmd/model"
	"PlayTube.com/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init init DB
func Init() {
	var err error
	dsn := config.ConfigInfo.Mysql.Username + ":" + config.ConfigInfo.Mysql.Password + "@tcp(" + config.ConfigInfo.Mysql.Addr + ")/" + config.ConfigInfo.Mysql.Database + "?charset=utf8mb4&parseTime=True&loc=Local"
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}
	// 建表并补齐唯一索引 去重靠的就是model标签里的索引
	if err = DB.AutoMigrate(&model.Comment{}, &model.Like{}); err != nil {
		panic(err)
	}
}
