package database

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	models "schoolapi/model"
)

// DB is the global GORM database handle, created once by ConnectDB and
// shared by every request handler.
var DB *gorm.DB

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// ConnectDB opens the database and runs migrations.
//
// TranslateError is on so that a lost read-then-write race still surfaces
// as gorm.ErrDuplicatedKey from the unique indexes; the handler pre-checks
// are only the friendly-error fast path.
func ConnectDB() {
	dsn := getEnv("DATABASE_URL", "school.db")

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Student{},
		&models.Subject{},
		&models.Session{},
		&models.Attendance{},
	); err != nil {
		log.Fatal("Failed to migrate schemas: ", err)
	}

	DB = db
}
