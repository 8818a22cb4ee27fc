package boot

import (
	"bloodbank/src/db"
	"bloodbank/src/models"
	"log"
)

func InitDb() {
	conn := db.GetDb()
	err := conn.AutoMigrate(
		&models.User{},
		&models.UserInfo{},
		&models.BloodRequest{},
		&models.QrCode{},
	)
	if err != nil {
		log.Fatalf("Error during migration: %s\n", err.Error())
	}
}
