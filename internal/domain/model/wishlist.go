package model

type Wishlist struct {
	WishlistID uint     `gorm:"primaryKey" json:"wishlist_id"`
	UserID     uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID  uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	Product    *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	BaseModel
}
