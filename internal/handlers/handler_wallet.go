package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tripvault/tripvault/internal/authz"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/middleware"
)

// walletHandler handles HTTP requests for the wallet hierarchy.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers wallet snapshot, allocation and audit routes.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.GET("/main", middleware.RequireOperation(authz.OpViewMainWallet), h.getMainWallet)
		wallets.GET("/company/:companyID", middleware.RequireOperation(authz.OpViewCompanyWallet), h.getCompanyWallet)
		wallets.GET("/employee/:employeeID", middleware.RequireOperation(authz.OpViewOwnWallet), h.getEmployeeWallet)
		wallets.POST("/allocate/company", middleware.RequireOperation(authz.OpAllocateCompany), h.allocateToCompany)
		wallets.POST("/allocate/employee", middleware.RequireOperation(authz.OpAllocateEmployee), h.allocateToEmployee)
		wallets.GET("/transactions", middleware.RequireOperation(authz.OpViewTransactions), h.listTransactions)
	}
}

// getMainWallet godoc
// @Summary Get the main wallet
// @Description Retrieves the company-wide fund pool snapshot
// @Tags wallets
// @Produce json
// @Success 200 {object} dto.MainWalletResponse
// @Security BearerAuth
// @Router /wallets/main [get]
func (h *walletHandler) getMainWallet(c *gin.Context) {
	wallet, err := h.walletService.GetMainWallet(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMainWalletResponse(*wallet))
}

// getCompanyWallet godoc
// @Summary Get a company wallet
// @Description Retrieves a subsidiary wallet snapshot; an unprovisioned wallet reads as zero
// @Tags wallets
// @Produce json
// @Param companyID path int true "Company ID"
// @Success 200 {object} dto.CompanyWalletResponse
// @Security BearerAuth
// @Router /wallets/company/{companyID} [get]
func (h *walletHandler) getCompanyWallet(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company id"})
		return
	}

	wallet, svcErr := h.walletService.GetCompanyWallet(c.Request.Context(), companyID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyWalletResponse(*wallet))
}

// getEmployeeWallet godoc
// @Summary Get an employee wallet
// @Description Retrieves an employee wallet snapshot; an unprovisioned wallet reads as zero
// @Tags wallets
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} dto.EmployeeWalletResponse
// @Security BearerAuth
// @Router /wallets/employee/{employeeID} [get]
func (h *walletHandler) getEmployeeWallet(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Param("employeeID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	// Employees may only read their own wallet; elevated roles may read any.
	claims, _ := middleware.GetClaimsFromCtx(c.Request.Context())
	if claims != nil && !authz.Allowed(authz.OpViewCompanyWallet, claims.Role) {
		callerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
		if !ok || callerID != employeeID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: not your wallet"})
			return
		}
	}

	wallet, svcErr := h.walletService.GetEmployeeWallet(c.Request.Context(), employeeID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeWalletResponse(*wallet))
}

// allocateToCompany godoc
// @Summary Allocate funds to a company wallet
// @Description Moves funds from the main wallet to a subsidiary wallet atomically
// @Tags wallets
// @Accept json
// @Produce json
// @Param allocation body dto.AllocateToCompanyRequest true "Allocation details"
// @Success 200 {object} dto.CompanyWalletResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient funds"
// @Security BearerAuth
// @Router /wallets/allocate/company [post]
func (h *walletHandler) allocateToCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AllocateToCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind allocation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.AllocateToCompany(c.Request.Context(), req.CompanyID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyWalletResponse(*wallet))
}

// allocateToEmployee godoc
// @Summary Allocate funds to an employee wallet
// @Description Moves funds from a subsidiary wallet to an employee wallet atomically
// @Tags wallets
// @Accept json
// @Produce json
// @Param allocation body dto.AllocateToEmployeeRequest true "Allocation details"
// @Success 200 {object} dto.EmployeeWalletResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient funds"
// @Security BearerAuth
// @Router /wallets/allocate/employee [post]
func (h *walletHandler) allocateToEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AllocateToEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind allocation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.AllocateToEmployee(c.Request.Context(), req.EmployeeID, req.CompanyID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeWalletResponse(*wallet))
}

// listTransactions godoc
// @Summary List the transaction audit log
// @Description Retrieves every fund movement, newest first
// @Tags wallets
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /wallets/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	transactions, err := h.walletService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponseSlice(transactions))
}
