package setting

import "gorm.io/gorm"

// Setting represents a named configuration value in the database.
type Setting struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null;column:key"`
	Value string `gorm:"not null"`
}

// TableName specifies the table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}
