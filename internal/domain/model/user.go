package model

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	BaseModel
	UserID    uint    `gorm:"primaryKey" json:"user_id"`
	UserName  string  `gorm:"not null;type:varchar(100)" json:"user_name"`
	UserEmail string  `gorm:"unique;not null;type:varchar(100)" json:"user_email"`
	Role      string  `gorm:"not null;type:varchar(20);default:customer" json:"role"`
	Orders    []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"` // 一對多，級聯刪除
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
