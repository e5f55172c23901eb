package services

import (
	"context"

	"sermepa/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SavePaymentOrder(ctx context.Context, order *entity.PaymentOrder) error
	GetPaymentOrder(ctx context.Context, order string) (*entity.PaymentOrder, error)

	SaveFeedback(ctx context.Context, record *entity.FeedbackRecord) error
}

type Data interface {
	DataType() string
}
