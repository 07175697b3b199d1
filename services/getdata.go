package services

import (
	"drivesense/model"

	"gorm.io/gorm"
)

func GetUserdata(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
