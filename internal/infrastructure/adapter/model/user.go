package model

// User represents the database model for users
type User struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"not null"`
	Email      string  `gorm:"uniqueIndex;not null;size:255"`
	Balance    float64 `gorm:"not null;default:0"`
	BTCBalance float64 `gorm:"column:btc_balance;not null;default:0"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
