// model/reminder.go
package model

import (
	"time"
)

type Reminder struct {
	ReminderID  int        `gorm:"column:reminder_id;primaryKey;autoIncrement"`
	UserID      int        `gorm:"column:user_id;not null"`
	VehicleID   string     `gorm:"column:vehicle_id;type:varchar(36);not null"`
	Title       string     `gorm:"column:title;type:varchar(255);not null"`
	Description string     `gorm:"column:description;type:text"`
	DueDate     time.Time  `gorm:"column:due_date;not null"`
	Completed   bool       `gorm:"column:completed;default:false;not null"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	NotifiedAt  *time.Time `gorm:"column:notified_at"`
	CreateAt    time.Time  `gorm:"column:create_at;autoCreateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Reminder) TableName() string {
	return "reminders"
}
