package services

import (
	"fmt"
	"strings"

	"farm_manager/internal/models"

	"github.com/shopspring/decimal"
)

// MessageSender delivers a text message to a phone number.
// *whatsapp.Client implements it.
type MessageSender interface {
	SendTextMessage(phone, message string) error
}

// NotificationService tells customers about their orders.
type NotificationService interface {
	NotifyOrderStatus(order *models.Order) error
}

type notificationService struct {
	sender MessageSender
}

func NewNotificationService(sender MessageSender) NotificationService {
	return &notificationService{sender: sender}
}

// NotifyOrderStatus messages the customer when the order is on its way or
// done. Other statuses and customers without a phone are skipped.
func (s *notificationService) NotifyOrderStatus(order *models.Order) error {
	if order.Customer == nil || strings.TrimSpace(order.Customer.Phone) == "" {
		return nil
	}

	var message string
	switch order.Status {
	case models.OrderDelivering:
		message = fmt.Sprintf("Chào %s, đơn hàng #%d đang được giao. Số tiền còn lại: %sđ.",
			order.Customer.Name, order.ID, formatVND(order.RemainingAmount))
	case models.OrderCompleted:
		message = fmt.Sprintf("Chào %s, đơn hàng #%d đã hoàn thành. Cảm ơn anh/chị đã ủng hộ!",
			order.Customer.Name, order.ID)
	default:
		return nil
	}

	if err := s.sender.SendTextMessage(order.Customer.Phone, message); err != nil {
		return fmt.Errorf("failed to notify customer %d: %w", order.Customer.ID, err)
	}
	return nil
}

// formatVND renders an amount with dot thousand separators, e.g. 105.000.
func formatVND(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
