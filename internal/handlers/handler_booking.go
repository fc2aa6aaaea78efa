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

// bookingHandler handles HTTP requests for the booking lifecycle.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// registerBookingRoutes registers booking lifecycle and listing routes.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", middleware.RequireOperation(authz.OpCreateBooking), h.createBooking)
		bookings.GET("/user/:userID", middleware.RequireOperation(authz.OpListBookings), h.listBookings)
		bookings.GET("/manager/:managerID", middleware.RequireOperation(authz.OpListManagerQueue), h.listManagerBookings)
		bookings.POST("/:id/approve", middleware.RequireOperation(authz.OpApproveBooking), h.approveBooking)
		bookings.POST("/:id/reject", middleware.RequireOperation(authz.OpRejectBooking), h.rejectBooking)
		bookings.POST("/:id/cancel", middleware.RequireOperation(authz.OpCancelBooking), h.cancelBooking)
	}
}

// createBooking godoc
// @Summary Create a booking
// @Description Validates the payload for its travel type and creates a pending booking. No funds move until approval.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid or incomplete payload"
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create booking request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Bookings are always created on the caller's own behalf.
	if callerID, ok := middleware.GetUserIDFromCtx(c.Request.Context()); ok {
		req.UserID = callerID
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List a user's bookings
// @Tags bookings
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {array} dto.BookingListingResponse
// @Security BearerAuth
// @Router /bookings/user/{userID} [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	// Non-privileged callers may only list their own bookings.
	claims, _ := middleware.GetClaimsFromCtx(c.Request.Context())
	if claims != nil && !authz.Allowed(authz.OpListManagerQueue, claims.Role) {
		callerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
		if !ok || callerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: not your bookings"})
			return
		}
	}

	listings, svcErr := h.bookingService.ListBookings(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListingResponseSlice(listings))
}

// listManagerBookings godoc
// @Summary List a manager's pending approvals
// @Description Retrieves the pending bookings routed to a manager
// @Tags bookings
// @Produce json
// @Param managerID path int true "Manager ID"
// @Success 200 {array} dto.BookingListingResponse
// @Security BearerAuth
// @Router /bookings/manager/{managerID} [get]
func (h *bookingHandler) listManagerBookings(c *gin.Context) {
	managerID, err := strconv.ParseInt(c.Param("managerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manager id"})
		return
	}

	listings, svcErr := h.bookingService.ListManagerBookings(c.Request.Context(), managerID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListingResponseSlice(listings))
}

// approveBooking godoc
// @Summary Approve a booking
// @Description Atomically debits the employee wallet, credits the subsidiary's used amount and marks the booking approved
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Insufficient funds or missing wallet"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 409 {object} map[string]string "Booking is not pending"
// @Security BearerAuth
// @Router /bookings/{id}/approve [post]
func (h *bookingHandler) approveBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	booking, svcErr := h.bookingService.ApproveBooking(c.Request.Context(), bookingID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// rejectBooking godoc
// @Summary Reject a booking
// @Description Marks a pending booking rejected. No wallet is touched.
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.StatusMessageResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 409 {object} map[string]string "Booking is not pending"
// @Security BearerAuth
// @Router /bookings/{id}/reject [post]
func (h *bookingHandler) rejectBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	if svcErr := h.bookingService.RejectBooking(c.Request.Context(), bookingID); svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.StatusMessageResponse{Message: "Booking rejected"})
}

// cancelBooking godoc
// @Summary Cancel a booking
// @Description Marks a pending booking cancelled. No wallet is touched.
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.StatusMessageResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 409 {object} map[string]string "Booking is not pending"
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (h *bookingHandler) cancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	if svcErr := h.bookingService.CancelBooking(c.Request.Context(), bookingID); svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.StatusMessageResponse{Message: "Booking cancelled"})
}
