package model

// Transaction represents the database model for transactions. The foreign
// key to users is declared but not enforced: the original schema never
// enables referential integrity and no delete path exists.
type Transaction struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	UserID      uint64  `gorm:"not null;index"`
	Date        string  `gorm:"not null;size:10"`
	Description string  `gorm:"not null;type:text"`
	Amount      float64 `gorm:"not null"`
	IsPositive  bool    `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
