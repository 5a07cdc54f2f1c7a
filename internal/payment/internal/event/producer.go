package event

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
)

type paymentEventProducer struct {
	producer mq.Producer
}

func NewPaymentEventProducer(q mq.MQ) (Producer, error) {
	p, err := q.Producer(PaymentEvent{}.Topic())
	if err != nil {
		return nil, err
	}
	return &paymentEventProducer{producer: p}, nil
}

func (s *paymentEventProducer) ProducePaymentEvent(ctx context.Context, evt PaymentEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = s.producer.Produce(ctx, &mq.Message{
		Key:   []byte(evt.OrderNo),
		Value: data,
	})
	return err
}
