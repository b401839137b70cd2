package main

import (
	"log"

	"tableside-pos/config"
	httpapi "tableside-pos/internal/api/http"
	"tableside-pos/internal/catalog"
	"tableside-pos/internal/service"
	"tableside-pos/internal/storage"
)

func main() {
	cfg := config.Load()

	cat := catalog.Default()
	orderStore := storage.NewOrderStore()
	tableStore := storage.NewTableStore(cat.Tables())

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := cfg.NewKafkaWriter()
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Printf("[pos] publishing order events to %s (%s)", cfg.KafkaBroker, cfg.OrderEventsTopic)
	}

	cartSvc := service.NewCartService()
	sessionSvc := service.NewSessionService(cat, cartSvc, tableStore, []byte(cfg.JWTSecret), cfg.TokenTTL)
	orderSvc := service.NewOrderService(orderStore, tableStore, cartSvc, sessionSvc, cat, publisher,
		service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL})
	tableSvc := service.NewTableService(tableStore, orderStore)

	handler := httpapi.NewHandler(cat, cartSvc, orderSvc, tableSvc, sessionSvc)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
}
