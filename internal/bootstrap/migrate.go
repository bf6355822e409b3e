package bootstrap

import (
	"anoa.com/coursecms/internal/entity"
	"gorm.io/gorm"
)

// Migrate creates the course, user and assignment tables plus the two
// enrollment join tables when they are absent. Existing tables are left
// as they are apart from GORM's additive column changes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Course{},
		&entity.User{},
		&entity.Assignment{},
	)
}
