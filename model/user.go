// model/user.go
package model

import (
	"time"
)

type User struct {
	UserID         int       `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	Role           string    `gorm:"column:role;type:enum('user','admin');default:'user';not null"`
	IsActive       string    `gorm:"column:is_active;type:enum('0','1');default:'1';not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (User) TableName() string {
	return "user"
}

type UserProfile struct {
	ProfileID           int       `gorm:"column:profile_id;primaryKey;autoIncrement"`
	UserID              int       `gorm:"column:user_id;uniqueIndex;not null"`
	CurrentVehicleBrand string    `gorm:"column:current_vehicle_brand;type:varchar(100)"`
	CurrentVehicleModel string    `gorm:"column:current_vehicle_model;type:varchar(100)"`
	CurrentVehicleYear  int       `gorm:"column:current_vehicle_year"`
	CurrentMileage      int       `gorm:"column:current_mileage"`
	UsageIntensity      string    `gorm:"column:usage_intensity;type:enum('low','medium','high');default:'medium'"`
	NotifyByPush        bool      `gorm:"column:notify_by_push;default:true"`
	NotifyByEmail       bool      `gorm:"column:notify_by_email;default:false"`
	CreateAt            time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdateAt            time.Time `gorm:"column:update_at;autoUpdateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}
