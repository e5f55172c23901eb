package internal

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"sermepa/config"
	"sermepa/services"
)

const (
	createPayment = "/pay"
	paymentNotify = "/notify"
	paymentStatus = "/order/:order_id"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(createPayment, s.createPayment)
	router.POST(paymentNotify, s.paymentNotify)
	router.GET(paymentStatus, s.paymentStatus)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

// createPayment opens a payment and responds with the signed redirect form
// to be rendered as hidden POST inputs.
func (s *Server) createPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var payment struct {
		Amount      int    `json:"amount"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] create payment: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	form, err := s.payments.CreatePayment(ctx, payment.Amount, payment.Description)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(form); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create payment: encode response", reqID), err)
	}
}

// paymentNotify receives the gateway feedback. The handler owns the parameter
// extraction: query and body values are merged into a plain map before being
// handed to the payments service, and the routing artifact key is dropped.
func (s *Server) paymentNotify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	if err := r.ParseForm(); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: parse form", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	params := make(map[string]string, len(r.Form))
	for key, values := range r.Form {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	delete(params, "q")

	if err := s.payments.Notify(ctx, params); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: process params", reqID), err)
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) paymentStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	orderId := ps.ByName("order_id")
	if orderId == "" {
		s.logger.Warn(fmt.Sprintf("[%s] empty order id", reqID))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.payments.GetOrder(ctx, orderId)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] order %s not found; %v", reqID, orderId, err))
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(order); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] order status: encode response", reqID), err)
	}
}
