package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/shivamsutar1233/WhatsForm-Backend/internal/links"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/orders"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/products"
	"github.com/shivamsutar1233/WhatsForm-Backend/internal/validation"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	Products *products.Store
	Links    *links.Store
	Orders   *orders.Store

	AdminUsername string
	AdminPassword string
}

// RequestID tags every request with an X-Request-Id, generating one when
// the caller did not send it, so log lines can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// RegisterRoutes wires every API endpoint. Only /api/products is behind
// the admin gate; the link and checkout endpoints are called by customers
// without credentials.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	api := r.Group("/api")
	api.POST("/admin/login", adminLogin(cfg, v))
	api.GET("/products", authenticateAdmin(cfg), listProducts(cfg))
	api.GET("/product/:productId", getProduct(cfg))
	api.POST("/generate-link", generateLink(cfg, v))
	api.GET("/order-link/:linkId", getOrderLink(cfg))
	api.POST("/saveToSheet", saveToSheet(cfg, v))
	api.PUT("/update-payment-status", updatePaymentStatus(cfg, v))
	api.GET("/order/:orderId", getOrder(cfg))
}

func listProducts(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := cfg.Products.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}
		respondData(c, http.StatusOK, list)
	}
}

func getProduct(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("productId")
		p, err := cfg.Products.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}
		if p == nil {
			respondError(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		respondData(c, http.StatusOK, p)
	}
}

func generateLink(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.GenerateLinkRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		lines := make([]links.LineInput, 0, len(req.Products))
		for _, p := range req.Products {
			lines = append(lines, links.LineInput{ProductID: p.ProductID, Quantity: p.Quantity})
		}

		linkID, err := cfg.Links.Create(c.Request.Context(), lines)
		if err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}
		respondData(c, http.StatusOK, gin.H{"linkId": linkID})
	}
}

// linkedProduct is one basket line joined against the products table.
type linkedProduct struct {
	products.Product
	Quantity int            `json:"quantity"`
	Subtotal products.Price `json:"subtotal"`
}

func getOrderLink(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		linkID := c.Param("linkId")

		lines, err := cfg.Links.FindByLinkID(ctx, linkID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}
		if len(lines) == 0 {
			respondError(c, http.StatusNotFound, "Order link not found", nil)
			return
		}

		joined := make([]linkedProduct, 0, len(lines))
		var total products.Price
		for _, line := range lines {
			p, err := cfg.Products.FindByID(ctx, line.ProductID)
			if err != nil {
				respondError(c, http.StatusInternalServerError, backendMessage(err), err)
				return
			}
			if p == nil {
				// A dangling product reference means the link data is
				// corrupt, which is a backend problem, not a missing link.
				respondError(c, http.StatusInternalServerError,
					"Product "+line.ProductID+" referenced by this link no longer exists", nil)
				return
			}
			subtotal := p.Price * products.Price(line.Quantity)
			total += subtotal
			joined = append(joined, linkedProduct{Product: *p, Quantity: line.Quantity, Subtotal: subtotal})
		}

		respondData(c, http.StatusOK, gin.H{
			"linkId":        linkID,
			"timestamp":     lines[0].Timestamp,
			"paymentStatus": lines[0].PaymentStatus,
			"products":      joined,
			"totalAmount":   total,
		})
	}
}

func saveToSheet(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.SaveOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if err := cfg.Orders.CheckReachable(ctx); err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}

		lines := make([]orders.Order, 0, len(req.Products))
		for _, item := range req.Products {
			lines = append(lines, orders.Order{
				OrderID:      req.OrderID,
				OrderDate:    req.OrderDate,
				CustomerName: req.CustomerName,
				Email:        req.Email,
				Phone:        req.Phone,
				ShippingAddress: orders.Address{
					Address1: req.Address,
					Address2: req.Address2,
					City:     req.City,
					State:    req.State,
					Pincode:  req.Pincode,
					Country:  req.Country,
				},
				BillingName: req.BillingName,
				BillingAddress: orders.Address{
					Address1: req.BillingAddress,
					Address2: req.BillingAddress2,
					City:     req.BillingCity,
					State:    req.BillingState,
					Pincode:  req.BillingPincode,
					Country:  req.BillingCountry,
				},
				Product: orders.ProductLine{
					ProductID: item.ProductID,
					Name:      item.Name,
					Quantity:  item.Quantity,
					Price:     orders.Amount(item.Price),
					SKU:       item.SKU,
					LineTotal: orders.Amount(item.Price * float64(item.Quantity)),
				},
				TotalAmount: orders.Amount(req.TotalAmount),
				Payment: orders.Payment{
					ID:     req.PaymentID,
					Status: req.PaymentStatus,
					Method: req.PaymentMethod,
				},
				Shipment: orders.Shipment{
					Height:  item.Height,
					Length:  item.Length,
					Breadth: item.Breadth,
					Weight:  item.Weight,
				},
				LinkID: req.LinkID,
			})
		}

		if err := cfg.Orders.Append(ctx, lines); err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}

		if len(req.CustomizationDetails) > 0 {
			if err := cfg.Orders.AppendCustomization(ctx, req.CustomizationDetails); err != nil {
				respondError(c, http.StatusInternalServerError,
					"Order rows were saved but writing customization details failed", err)
				return
			}
		}

		respondData(c, http.StatusOK, gin.H{
			"orderId":      req.OrderID,
			"rowsAppended": len(lines),
		})
	}
}

func updatePaymentStatus(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.UpdatePaymentStatusRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		updated, err := cfg.Links.UpdatePaymentStatus(c.Request.Context(), req.LinkID, req.PaymentStatus)
		if err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}
		if updated == 0 {
			respondError(c, http.StatusNotFound, "Order link not found", nil)
			return
		}
		respondData(c, http.StatusOK, gin.H{
			"linkId":        req.LinkID,
			"paymentStatus": req.PaymentStatus,
			"rowsUpdated":   updated,
		})
	}
}

func getOrder(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderId")
		o, err := cfg.Orders.FindByOrderID(c.Request.Context(), id)
		if err != nil {
			respondError(c, http.StatusInternalServerError, backendMessage(err), err)
			return
		}
		if o == nil {
			respondError(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		respondData(c, http.StatusOK, o)
	}
}
