package models

// Revenue is a precomputed reporting row, read verbatim.
type Revenue struct {
	Month   string `gorm:"primaryKey" json:"month"`
	Revenue int64  `json:"revenue"`
}
