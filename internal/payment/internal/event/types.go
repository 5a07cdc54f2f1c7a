package event

import "context"

type Producer interface {
	ProducePaymentEvent(ctx context.Context, evt PaymentEvent) error
}

// PaymentEvent 支付完成事件,下游按需消费
type PaymentEvent struct {
	OrderNo   string `json:"orderNo"`
	UID       int64  `json:"uid"`
	Type      uint8  `json:"type"`
	RelatedID int64  `json:"relatedId"`
	PaidAt    int64  `json:"paidAt"`
}

func (PaymentEvent) Topic() string {
	return "payment_events"
}
