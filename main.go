package main

import (
	"flag"

	"sermepa/config"
	"sermepa/entity"
	"sermepa/internal"
	"sermepa/services"
)

func main() {

	logger := internal.NewLogger("internal", false, nil)

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	logger.Info("using config file: " + *configPath)
	conf, err := config.GetConfig(*configPath)
	if err != nil {
		logger.Error("boot", err)
		return
	}

	merchant, err := entity.NewMerchant(
		conf.Merchant.Name,
		conf.Merchant.Code,
		conf.Merchant.Terminal,
		conf.Merchant.Secret,
		conf.Merchant.Algorithm,
		conf.Merchant.Environment,
	)
	if err != nil {
		logger.Error("merchant profile", err)
		return
	}

	var mongo services.Database
	if conf.Mongo.Enabled {
		client, err := internal.NewMongoClient(conf)
		if err != nil {
			logger.Error("mongo client", err)
			return
		}
		mongo = client
		logger.Info("mongo client initialized")
	}

	gateway := internal.NewGateway(merchant)

	payments := internal.NewPayments(conf, merchant, gateway)
	payments.SetLogger(internal.NewLogger("payments", conf.IsDebug, mongo))
	payments.SetDatabase(mongo)

	server := internal.NewServer(conf)
	server.SetLogger(internal.NewLogger("server", conf.IsDebug, mongo))
	server.SetPaymentsService(payments)

	err = server.Start()
	if err != nil {
		logger.Error("server start", err)
		return
	}

}
