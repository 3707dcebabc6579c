package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/bank/protocol"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const UsernameKey = "username"

type balanceResponse struct {
	Username string `json:"username"`
	Balance  string `json:"balance"`
}

type transactionsResponse struct {
	Username     string            `json:"username"`
	Transactions []protocol.Record `json:"transactions"`
}

type AccountsHandler struct {
	service domain.BankingService
	logger  logging.Logger
}

func NewAccountsHandler(service domain.BankingService, logger logging.Logger) *AccountsHandler {
	return &AccountsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AccountsHandler) GetBalance(c *gin.Context) {
	username := c.Param(UsernameKey)

	balance, err := h.service.GetBalance(c, username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse{
		Username: username,
		Balance:  domain.FormatAmount(balance),
	})
}

func (h *AccountsHandler) GetTransactions(c *gin.Context) {
	username := c.Param(UsernameKey)

	records, err := h.service.Transactions(c, username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactionsResponse{
		Username:     username,
		Transactions: protocol.RecordsFromDomain(records),
	})
}

func (h *AccountsHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, &domain.AccountNotFoundError{}) {
		c.JSON(http.StatusNotFound, gin.H{"errors": "account not found"})
		return
	}

	h.logger.Error("admin request failed", "path", c.FullPath(), "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
}
