// Package http exposes a read-only admin API over the bank accounts.
package http

import (
	"net/http"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

func NewRouter(service domain.BankingService, adminToken string, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	accountsHandler := NewAccountsHandler(service, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api", NewTokenMiddleware(adminToken))
	{
		api.GET("/accounts/:"+UsernameKey+"/balance", accountsHandler.GetBalance)
		api.GET("/accounts/:"+UsernameKey+"/transactions", accountsHandler.GetTransactions)
	}

	return router
}
