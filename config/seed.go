package database

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	models "schoolapi/model"
	"schoolapi/utils"
)

// Seed upserts one account per role so a fresh database is usable
// immediately. Existing rows are left untouched.
func Seed(db *gorm.DB) error {
	hashed, err := utils.HashPassword("password123")
	if err != nil {
		return err
	}

	accounts := []models.User{
		{Email: "admin@school.com", Firstname: "Admin", Lastname: "User", Password: hashed, Role: models.RoleAdmin},
		{Email: "teacher@school.com", Firstname: "Teacher", Lastname: "User", Password: hashed, Role: models.RoleTeacher},
		{Email: "student@school.com", Firstname: "Student", Lastname: "User", Password: hashed, Role: models.RoleStudent},
		{Email: "parent@school.com", Firstname: "Parent", Lastname: "User", Password: hashed, Role: models.RoleParent},
	}

	for i := range accounts {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&accounts[i]).Error
		if err != nil {
			return err
		}
	}

	log.Println("Seed accounts ready")
	return nil
}
