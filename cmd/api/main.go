package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivamsutar1233/WhatsForm-Backend/internal/config"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/handlers"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/links"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/orders"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/products"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/sheets"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), handlers.RequestID())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client, err := sheets.NewClient(ctx, cfg.SheetsClientEmail, cfg.SheetsPrivateKey)
	if err != nil {
		log.Fatalf("failed to init sheets client: %v", err)
	}

	linkStore := links.NewStore(client, cfg.OrderLinksSpreadsheetID)

	// Provision the OrderLinks sheet once at startup instead of racing on
	// the first request. A failure here is not fatal; the store retries on
	// the first write.
	if err := linkStore.EnsureSheet(ctx); err != nil {
		log.Printf("order links provisioning failed, will retry on first write: %v", err)
	}

	hcfg := handlers.HandlerConfig{
		Products:      products.NewStore(client, cfg.ProductsSpreadsheetID),
		Links:         linkStore,
		Orders:        orders.NewStore(client, cfg.OrdersSpreadsheetID),
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}

	r := setupRouter(hcfg)

	addr := ":" + cfg.Port
	log.Printf("running server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
