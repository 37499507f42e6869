package dto

import "errors"

type AddCartItemDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

func (d *AddCartItemDTO) Validate() error {
	if d.ProductID == 0 {
		return errors.New("product_id is required")
	}
	if d.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return nil
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

func (d *UpdateCartItemDTO) Validate() error {
	if d.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return nil
}

type AddWishlistItemDTO struct {
	ProductID uint `json:"product_id"`
}

func (d *AddWishlistItemDTO) Validate() error {
	if d.ProductID == 0 {
		return errors.New("product_id is required")
	}
	return nil
}
