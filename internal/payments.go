package internal

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"sermepa/config"
	"sermepa/entity"
	"sermepa/services"
)

// Payments orchestrates the redirect payment flow: it opens payment orders,
// builds signed redirect forms through the configured gateway engine and
// processes the asynchronous feedback that closes them. Fine-grained locking
// per order allows concurrent payments while keeping each order consistent.
type Payments struct {
	conf     *config.Config
	merchant *entity.Merchant
	gateway  services.Gateway
	database services.Database
	logger   services.LogHandler
	locks    sync.Map // map[string]*sync.Mutex for per-order locking
	now      func() time.Time
}

func NewPayments(conf *config.Config, merchant *entity.Merchant, gateway services.Gateway) *Payments {
	return &Payments{
		conf:     conf,
		merchant: merchant,
		gateway:  gateway,
		locks:    sync.Map{},
		now:      time.Now,
	}
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	p.logger.Info(fmt.Sprintf("gateway %s; algorithm %s", p.merchant.URL, p.merchant.Algorithm))
}

// lockOrder acquires a lock for a specific order to prevent concurrent
// modifications.
func (p *Payments) lockOrder(order string) *sync.Mutex {
	value, _ := p.locks.LoadOrStore(order, &sync.Mutex{})
	mutex := value.(*sync.Mutex)
	mutex.Lock()
	return mutex
}

// unlockOrder releases the lock and cleans up the mutex from the map to
// prevent unbounded growth.
func (p *Payments) unlockOrder(order string, mutex *sync.Mutex) {
	mutex.Unlock()
	p.locks.Delete(order)
}

// CreatePayment builds a signed redirect form for the given amount in
// currency minor units and registers the payment order.
func (p *Payments) CreatePayment(ctx context.Context, amount int, description string) (*entity.SignedForm, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount %v is not payable", amount)
	}

	order := p.newOrderNumber(ctx)
	mutex := p.lockOrder(order)
	defer p.unlockOrder(order, mutex)

	request := entity.NewRequest()
	if err := request.SetAmount(strconv.Itoa(amount)); err != nil {
		return nil, err
	}
	if err := request.SetCurrency(p.conf.Merchant.Currency); err != nil {
		return nil, err
	}
	if err := request.SetOrder(order); err != nil {
		return nil, err
	}
	if err := request.SetTransactionType(entity.TransactionTypeAuthorization); err != nil {
		return nil, err
	}
	if description != "" {
		if err := request.SetProductDescription(description); err != nil {
			return nil, err
		}
	}
	if p.conf.Merchant.Language != "" {
		if err := request.SetConsumerLanguage(p.conf.Merchant.Language); err != nil {
			return nil, err
		}
	}
	if p.conf.Merchant.NotifyURL != "" {
		if err := request.SetMerchantURL(p.conf.Merchant.NotifyURL); err != nil {
			return nil, err
		}
	}
	if p.conf.Merchant.SuccessURL != "" {
		if err := request.SetUrlOK(p.conf.Merchant.SuccessURL); err != nil {
			return nil, err
		}
	}
	if p.conf.Merchant.FailureURL != "" {
		if err := request.SetUrlKO(p.conf.Merchant.FailureURL); err != nil {
			return nil, err
		}
	}

	form, err := p.gateway.Build(request)
	if err != nil {
		p.logger.Error(fmt.Sprintf("build form for order %s", order), err)
		return nil, err
	}

	if p.database != nil {
		paymentOrder := &entity.PaymentOrder{
			Order:       order,
			Amount:      strconv.Itoa(amount),
			Currency:    p.conf.Merchant.Currency,
			Description: description,
			TimeOpened:  p.now(),
		}
		if err = p.database.SavePaymentOrder(ctx, paymentOrder); err != nil {
			p.logger.Error("save order", err)
			return nil, err
		}
	}

	p.logger.Info(fmt.Sprintf("order %s: form signed for amount %v", order, amount))
	return form, nil
}

// newOrderNumber derives a 12-character order from the current time,
// yymmddhhmmss, first four characters numeric as the gateway requires. Two
// payments opened within the same second would collide on that scheme, so a
// number already stored is incremented until a free one is found.
func (p *Payments) newOrderNumber(ctx context.Context) string {
	order := p.now().Format("060102150405")
	if p.database == nil {
		return order
	}
	number, err := strconv.ParseInt(order, 10, 64)
	if err != nil {
		return order
	}
	for attempt := 0; attempt < 100; attempt++ {
		if _, err = p.database.GetPaymentOrder(ctx, order); err != nil {
			return order
		}
		number++
		order = fmt.Sprintf("%012d", number)
	}
	return order
}

// Notify processes the feedback parameters extracted by the HTTP layer. The
// expected amount for legacy verification comes from the stored payment
// order; a signature mismatch is recorded, not returned as an error.
func (p *Payments) Notify(ctx context.Context, params map[string]string) error {
	feedback := entity.Feedback(params)

	// the legacy protocol needs the original amount from our own records
	amount := ""
	order, _ := feedback.Order()
	if order != "" && p.database != nil {
		if stored, err := p.database.GetPaymentOrder(ctx, order); err == nil {
			amount = stored.Amount
		}
	}

	verdict, err := p.gateway.Verify(params, amount)
	if err != nil {
		p.logger.Error("verify feedback", err)
		return err
	}

	record := &entity.FeedbackRecord{
		Order:        order,
		Verified:     verdict.Verified,
		Params:       feedback,
		TimeReceived: p.now(),
	}
	if verdict.Verified {
		record.Params = verdict.Decoded
		if decodedOrder, ok := verdict.Decoded.Order(); ok {
			record.Order = decodedOrder
		}
		if code, ok := verdict.Decoded.Response(); ok {
			record.Response, _ = verdict.Decoded.Get("Ds_Response")
			record.Result = p.gateway.TranslateResponseCode(code)
		}
		p.logger.Info(fmt.Sprintf("order %s: %s", record.Order, record.Result))
	} else {
		p.logger.Warn(fmt.Sprintf("order %s: signature mismatch", record.Order))
	}

	if p.database != nil {
		if err = p.database.SaveFeedback(ctx, record); err != nil {
			p.logger.Error("save feedback", err)
		}
		if verdict.Verified && record.Order != "" {
			p.closeOrder(ctx, record)
		}
	}
	return nil
}

// GetOrder returns a stored payment order.
func (p *Payments) GetOrder(ctx context.Context, order string) (*entity.PaymentOrder, error) {
	if p.database == nil {
		return nil, fmt.Errorf("database not set")
	}
	return p.database.GetPaymentOrder(ctx, order)
}

func (p *Payments) closeOrder(ctx context.Context, record *entity.FeedbackRecord) {
	mutex := p.lockOrder(record.Order)
	defer p.unlockOrder(record.Order, mutex)

	stored, err := p.database.GetPaymentOrder(ctx, record.Order)
	if err != nil {
		p.logger.Error(fmt.Sprintf("get payment order %s", record.Order), err)
		return
	}
	if stored.IsCompleted {
		return
	}

	stored.IsCompleted = true
	stored.Verified = true
	stored.Response = record.Response
	stored.Result = record.Result
	stored.TimeClosed = p.now()
	if code, ok := record.Params.Get("Ds_AuthorisationCode"); ok {
		stored.AuthorisationCode = code
	}
	if data, ok := record.Params.Get("Ds_MerchantData"); ok {
		stored.MerchantData = data
	}

	if err = p.database.SavePaymentOrder(ctx, stored); err != nil {
		p.logger.Error("save payment order", err)
	}
}
