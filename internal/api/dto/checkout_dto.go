package dto

import (
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

// AddressDTO 地址欄位走白名單，未知欄位在decode時直接拒絕
type AddressDTO struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

func (a *AddressDTO) Validate() error {
	if a.Name == "" || a.Line1 == "" || a.City == "" || a.PostalCode == "" || a.Country == "" {
		return errors.New("address requires name, line1, city, postal_code and country")
	}
	return nil
}

func (a *AddressDTO) ToModel() model.Address {
	return model.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

type CheckoutDTO struct {
	BillingAddress  AddressDTO `json:"billing_address"`
	ShippingAddress AddressDTO `json:"shipping_address"`
	PaymentMethod   string     `json:"payment_method"`
	CouponCode      string     `json:"coupon_code"`
}

func (c *CheckoutDTO) Validate() error {
	if err := c.BillingAddress.Validate(); err != nil {
		return errors.New("billing_address: " + err.Error())
	}
	if err := c.ShippingAddress.Validate(); err != nil {
		return errors.New("shipping_address: " + err.Error())
	}
	if c.PaymentMethod == "" {
		return errors.New("payment_method is required")
	}
	return nil
}
