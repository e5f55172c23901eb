package internal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sermepa/config"
	"sermepa/entity"
	"sermepa/services"
)

type fakeDatabase struct {
	orders   map[string]*entity.PaymentOrder
	feedback []*entity.FeedbackRecord
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{orders: make(map[string]*entity.PaymentOrder)}
}

func (f *fakeDatabase) WriteLogMessage(services.Data) error {
	return nil
}

func (f *fakeDatabase) SavePaymentOrder(_ context.Context, order *entity.PaymentOrder) error {
	saved := *order
	f.orders[order.Order] = &saved
	return nil
}

func (f *fakeDatabase) GetPaymentOrder(_ context.Context, order string) (*entity.PaymentOrder, error) {
	stored, ok := f.orders[order]
	if !ok {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "order"}
	}
	found := *stored
	return &found, nil
}

func (f *fakeDatabase) SaveFeedback(_ context.Context, record *entity.FeedbackRecord) error {
	f.feedback = append(f.feedback, record)
	return nil
}

type quietLogger struct{}

func (quietLogger) Debug(string)        {}
func (quietLogger) Info(string)         {}
func (quietLogger) Warn(string)         {}
func (quietLogger) Error(string, error) {}

func newTestPayments(t *testing.T, db *fakeDatabase) *Payments {
	t.Helper()
	conf := &config.Config{}
	conf.Merchant.Currency = "978"
	conf.Merchant.NotifyURL = "https://shop.example/notify"

	merchant := modernMerchant(t)
	payments := NewPayments(conf, merchant, NewGateway(merchant))
	payments.SetLogger(quietLogger{})
	payments.SetDatabase(db)
	payments.now = func() time.Time {
		return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return payments
}

func TestCreatePayment(t *testing.T) {
	db := newFakeDatabase()
	payments := newTestPayments(t, db)

	form, err := payments.CreatePayment(context.Background(), 15050, "Charging session")
	require.NoError(t, err)
	require.Len(t, form.Fields, 3)

	// the order number is derived from the clock, yymmddhhmmss
	stored, ok := db.orders["250101120000"]
	require.True(t, ok)
	assert.Equal(t, "15050", stored.Amount)
	assert.Equal(t, "978", stored.Currency)
	assert.Equal(t, "Charging session", stored.Description)
	assert.False(t, stored.IsCompleted)

	encoded, _ := form.Get("Ds_MerchantParameters")
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	var keys map[string]string
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Equal(t, "250101120000", keys["Ds_Merchant_Order"])
	assert.Equal(t, "https://shop.example/notify", keys["Ds_Merchant_MerchantURL"])
}

func TestCreatePaymentSameSecond(t *testing.T) {
	db := newFakeDatabase()
	payments := newTestPayments(t, db)
	ctx := context.Background()

	// the clock is frozen, so both payments fall into the same second
	_, err := payments.CreatePayment(ctx, 15050, "first")
	require.NoError(t, err)
	_, err = payments.CreatePayment(ctx, 20000, "second")
	require.NoError(t, err)

	require.Len(t, db.orders, 2)
	first, ok := db.orders["250101120000"]
	require.True(t, ok)
	assert.Equal(t, "15050", first.Amount)
	second, ok := db.orders["250101120001"]
	require.True(t, ok)
	assert.Equal(t, "20000", second.Amount)
}

func TestCreatePaymentRejectsAmount(t *testing.T) {
	payments := newTestPayments(t, newFakeDatabase())

	_, err := payments.CreatePayment(context.Background(), 0, "")
	assert.Error(t, err)
	_, err = payments.CreatePayment(context.Background(), -100, "")
	assert.Error(t, err)
}

func TestNotifyClosesOrder(t *testing.T) {
	db := newFakeDatabase()
	payments := newTestPayments(t, db)
	ctx := context.Background()

	_, err := payments.CreatePayment(ctx, 15050, "Charging session")
	require.NoError(t, err)

	params := notification(t, testSecret, map[string]string{
		"Ds_Order":             "250101120000",
		"Ds_Response":          "0000",
		"Ds_AuthorisationCode": "123456",
		"Ds_MerchantData":      "session-42",
	})
	require.NoError(t, payments.Notify(ctx, params))

	order, err := payments.GetOrder(ctx, "250101120000")
	require.NoError(t, err)
	assert.True(t, order.IsCompleted)
	assert.True(t, order.Verified)
	assert.Equal(t, "0000", order.Response)
	assert.Equal(t, responseAuthorized, order.Result)
	assert.Equal(t, "123456", order.AuthorisationCode)
	assert.Equal(t, "session-42", order.MerchantData)

	require.Len(t, db.feedback, 1)
	assert.True(t, db.feedback[0].Verified)
	assert.Equal(t, "250101120000", db.feedback[0].Order)
}

func TestNotifyRecordsMismatch(t *testing.T) {
	db := newFakeDatabase()
	payments := newTestPayments(t, db)
	ctx := context.Background()

	_, err := payments.CreatePayment(ctx, 15050, "")
	require.NoError(t, err)

	params := notification(t, testSecret, map[string]string{
		"Ds_Order":    "250101120000",
		"Ds_Response": "0000",
	})
	params["Ds_Signature"] = "bm90IGEgcmVhbCBzaWduYXR1cmUgYXQgYWxs"

	// a mismatch is an outcome, not an error
	require.NoError(t, payments.Notify(ctx, params))

	order, err := payments.GetOrder(ctx, "250101120000")
	require.NoError(t, err)
	assert.False(t, order.IsCompleted)

	require.Len(t, db.feedback, 1)
	assert.False(t, db.feedback[0].Verified)
}

func TestNotifyRepeatedFeedback(t *testing.T) {
	db := newFakeDatabase()
	payments := newTestPayments(t, db)
	ctx := context.Background()

	_, err := payments.CreatePayment(ctx, 15050, "")
	require.NoError(t, err)

	params := notification(t, testSecret, map[string]string{
		"Ds_Order":             "250101120000",
		"Ds_Response":          "0000",
		"Ds_AuthorisationCode": "123456",
	})
	require.NoError(t, payments.Notify(ctx, params))
	require.NoError(t, payments.Notify(ctx, params))

	// the second notification is archived but the closed order is untouched
	order, err := payments.GetOrder(ctx, "250101120000")
	require.NoError(t, err)
	assert.True(t, order.IsCompleted)
	assert.Len(t, db.feedback, 2)
}

func TestGetOrderWithoutDatabase(t *testing.T) {
	conf := &config.Config{}
	conf.Merchant.Currency = "978"
	merchant := modernMerchant(t)
	payments := NewPayments(conf, merchant, NewGateway(merchant))
	payments.SetLogger(quietLogger{})

	_, err := payments.GetOrder(context.Background(), "250101120000")
	assert.Error(t, err)
}
