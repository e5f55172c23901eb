package services

import (
	"context"

	"sermepa/entity"
)

type Payments interface {
	CreatePayment(ctx context.Context, amount int, description string) (*entity.SignedForm, error)
	Notify(ctx context.Context, params map[string]string) error
	GetOrder(ctx context.Context, order string) (*entity.PaymentOrder, error)
}
