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

// companyHandler handles HTTP requests for the company hierarchy.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers company, department and storehouse routes.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", middleware.RequireOperation(authz.OpCreateCompany), h.createCompany)
		companies.GET("", middleware.RequireOperation(authz.OpListCompanies), h.listCompanies)
		companies.POST("/subsidiaries", middleware.RequireOperation(authz.OpCreateSubsidiary), h.createSubsidiary)
		companies.GET("/subsidiaries", middleware.RequireOperation(authz.OpListSubsidiaries), h.listSubsidiaries)
	}

	departments := rg.Group("/departments", middleware.RequireOperation(authz.OpManageDepartments))
	{
		departments.POST("", h.createDepartment)
		departments.GET("/company/:companyID", h.listDepartments)
		departments.DELETE("/:id", h.deleteDepartment)
	}

	storehouses := rg.Group("/storehouses", middleware.RequireOperation(authz.OpManageStorehouses))
	{
		storehouses.POST("", h.createStorehouse)
		storehouses.GET("/company/:companyID", h.listStorehouses)
	}
}

// createCompany godoc
// @Summary Create the root company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 409 {object} map[string]string "Root company already exists"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create company request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// createSubsidiary godoc
// @Summary Create a subsidiary
// @Tags companies
// @Accept json
// @Produce json
// @Param subsidiary body dto.CreateSubsidiaryRequest true "Subsidiary details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Root company not found"
// @Security BearerAuth
// @Router /companies/subsidiaries [post]
func (h *companyHandler) createSubsidiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSubsidiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create subsidiary request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	subsidiary, err := h.companyService.CreateSubsidiary(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(subsidiary))
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponseSlice(companies))
}

// listSubsidiaries godoc
// @Summary List subsidiaries with wallet figures
// @Tags companies
// @Produce json
// @Success 200 {array} dto.SubsidiarySummaryResponse
// @Security BearerAuth
// @Router /companies/subsidiaries [get]
func (h *companyHandler) listSubsidiaries(c *gin.Context) {
	summaries, err := h.companyService.ListSubsidiaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.SubsidiarySummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = dto.SubsidiarySummaryResponse{
			CompanyID:        s.CompanyID,
			Name:             s.Name,
			AllocatedAmount:  s.AllocatedAmount,
			UsedAmount:       s.UsedAmount,
			AvailableBalance: s.AvailableBalance,
			CreatedAt:        s.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, out)
}

// createDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Security BearerAuth
// @Router /departments [post]
func (h *companyHandler) createDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	department, err := h.companyService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// listDepartments godoc
// @Summary List a company's departments
// @Tags departments
// @Produce json
// @Param companyID path int true "Company ID"
// @Success 200 {array} dto.DepartmentResponse
// @Security BearerAuth
// @Router /departments/company/{companyID} [get]
func (h *companyHandler) listDepartments(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company id"})
		return
	}

	departments, svcErr := h.companyService.ListDepartments(c.Request.Context(), companyID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	out := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		out[i] = dto.ToDepartmentResponse(&departments[i])
	}
	c.JSON(http.StatusOK, out)
}

// deleteDepartment godoc
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.StatusMessageResponse
// @Failure 404 {object} map[string]string "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *companyHandler) deleteDepartment(c *gin.Context) {
	departmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department id"})
		return
	}

	if svcErr := h.companyService.DeleteDepartment(c.Request.Context(), departmentID); svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.StatusMessageResponse{Message: "Department deleted"})
}

// createStorehouse godoc
// @Summary Create a storehouse
// @Tags storehouses
// @Accept json
// @Produce json
// @Param storehouse body dto.CreateStorehouseRequest true "Storehouse details"
// @Success 201 {object} dto.StorehouseResponse
// @Security BearerAuth
// @Router /storehouses [post]
func (h *companyHandler) createStorehouse(c *gin.Context) {
	var req dto.CreateStorehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	storehouse, err := h.companyService.CreateStorehouse(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStorehouseResponse(storehouse))
}

// listStorehouses godoc
// @Summary List a company's storehouses
// @Tags storehouses
// @Produce json
// @Param companyID path int true "Company ID"
// @Success 200 {array} dto.StorehouseResponse
// @Security BearerAuth
// @Router /storehouses/company/{companyID} [get]
func (h *companyHandler) listStorehouses(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company id"})
		return
	}

	storehouses, svcErr := h.companyService.ListStorehouses(c.Request.Context(), companyID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	out := make([]dto.StorehouseResponse, len(storehouses))
	for i := range storehouses {
		out[i] = dto.ToStorehouseResponse(&storehouses[i])
	}
	c.JSON(http.StatusOK, out)
}
