package db

import (
	"betdiary/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Team{},
		&models.Competition{},
		&models.Market{},
		&models.Strategy{},
		&models.Match{},
		&models.PreAnalysis{},
		&models.Operation{},
		&models.OperationItem{},
		&models.CashTransaction{},
		&models.CustomOption{},
	)
}
