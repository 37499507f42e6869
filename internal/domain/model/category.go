package model

type Category struct {
	CategoryID uint   `gorm:"primaryKey" json:"category_id"`
	Name       string `gorm:"not null;type:varchar(100)" json:"name"`
	Slug       string `gorm:"not null;type:varchar(100);unique" json:"slug"`
	ParentID   *uint  `gorm:"index" json:"parent_id,omitempty"` // 根分類為 null
	IsActive   bool   `gorm:"not null;default:true" json:"is_active"`
	BaseModel
}

type Brand struct {
	BrandID  uint   `gorm:"primaryKey" json:"brand_id"`
	Name     string `gorm:"not null;type:varchar(100)" json:"name"`
	Slug     string `gorm:"not null;type:varchar(100);unique" json:"slug"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
	BaseModel
}
