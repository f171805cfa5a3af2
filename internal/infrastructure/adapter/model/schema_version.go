package model

import (
	"time"
)

// SchemaVersion records which schema revision the store was created with.
// There is no incremental migration path: a mismatch drops both record
// tables and recreates them from scratch.
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for the schema version model
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
