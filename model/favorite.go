package model

import (
	"time"
)

type Favorite struct {
	FavoriteID int       `gorm:"column:favorite_id;primaryKey;autoIncrement"`
	UserID     int       `gorm:"column:user_id;not null;uniqueIndex:idx_user_vehicle"`
	VehicleID  string    `gorm:"column:vehicle_id;type:varchar(36);not null;uniqueIndex:idx_user_vehicle"`
	CreateAt   time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}
