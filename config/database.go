package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func Dsn(cfg *Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName, cfg.DatabaseSchema)
}

// InitDB opens the database, makes sure the schema exists and migrates the given models.
func InitDB(cfg *Config, models ...any) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(Dsn(cfg)), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   cfg.DatabaseSchema + ".",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, cfg.DatabaseSchema))
	if x.Error != nil {
		return nil, x.Error
	}
	if err := db.AutoMigrate(models...); err != nil {
		return nil, err
	}
	return db, nil
}
