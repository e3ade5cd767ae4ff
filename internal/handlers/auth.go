package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/shivamsutar1233/WhatsForm-Backend/internal/validation"
)

// adminLogin compares the submitted credentials against the configured
// pair and returns an opaque bearer token on match. The token is just
// base64("username:password"); authenticateAdmin reverses it.
func adminLogin(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.LoginRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if req.Username != cfg.AdminUsername || req.Password != cfg.AdminPassword {
			respondError(c, http.StatusUnauthorized, "Invalid username or password", nil)
			return
		}

		token := base64.StdEncoding.EncodeToString([]byte(req.Username + ":" + req.Password))
		respondData(c, http.StatusOK, gin.H{"token": token})
	}
}

// authenticateAdmin gates a route on the bearer token issued by adminLogin.
func authenticateAdmin(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, http.StatusUnauthorized, "Missing Authorization header", nil)
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			respondError(c, http.StatusUnauthorized, "Invalid Authorization header", nil)
			c.Abort()
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		username, password, ok := strings.Cut(string(decoded), ":")
		if !ok || username != cfg.AdminUsername || password != cfg.AdminPassword {
			respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
