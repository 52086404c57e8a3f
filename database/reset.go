package database

import (
	"log"

	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/gorm"
)

// resetTablesSQL xóa các bảng content và bảng version của golang-migrate
const resetTablesSQL = `
	DROP TABLE IF EXISTS experiences CASCADE;
	DROP TABLE IF EXISTS certificates CASCADE;
	DROP TABLE IF EXISTS blog_posts CASCADE;
	DROP TABLE IF EXISTS projects CASCADE;
	DROP TABLE IF EXISTS schema_migrations CASCADE;
`

// Reset drops all tables so migrations run from the beginning.
// WARNING: xóa toàn bộ dữ liệu, chỉ gọi khi RESET_DB=true
func Reset(db *gorm.DB) error {
	log.Println("WARNING: Resetting database (RESET_DB=true is set)")

	if err := db.Exec(resetTablesSQL).Error; err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to drop tables")
	}

	log.Println("Database reset completed successfully")
	return nil
}
