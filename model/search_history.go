package model

import (
	"time"
)

type SearchHistory struct {
	HistoryID int       `gorm:"column:history_id;primaryKey;autoIncrement"`
	UserID    int       `gorm:"column:user_id;not null;index"`
	Brand     string    `gorm:"column:brand;type:varchar(100);not null"`
	Model     string    `gorm:"column:model;type:varchar(100);not null"`
	Year      int       `gorm:"column:year;not null"`
	CreateAt  time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}
