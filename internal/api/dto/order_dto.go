package dto

import (
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

// 兩個欄位皆可留空表示不變更，但不能同時為空
type UpdateOrderStatusDTO struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

func (d *UpdateOrderStatusDTO) Validate() error {
	if d.Status == "" && d.PaymentStatus == "" {
		return errors.New("status or payment_status is required")
	}
	if d.Status != "" {
		switch model.OrderStatus(d.Status) {
		case model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
			model.OrderStatusDelivered, model.OrderStatusCancelled:
		default:
			return errors.New("status must be one of pending, processing, shipped, delivered, cancelled")
		}
	}
	if d.PaymentStatus != "" {
		switch model.PaymentStatus(d.PaymentStatus) {
		case model.PaymentStatusPending, model.PaymentStatusPaid,
			model.PaymentStatusFailed, model.PaymentStatusRefunded:
		default:
			return errors.New("payment_status must be one of pending, paid, failed, refunded")
		}
	}
	return nil
}
