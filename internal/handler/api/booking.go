package api

import (
	"errors"
	"net/http"

	reqdto "world-hotels/internal/handler/dto/request"
	resdto "world-hotels/internal/handler/dto/response"
	"world-hotels/internal/handler/httperr"
	"world-hotels/internal/handler/middleware"
	"world-hotels/internal/pkg/errs"
	"world-hotels/internal/usecase/commands"
	"world-hotels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a room if capacity remains for the check-in date
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no user in context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		case errors.Is(err, errs.ErrSoldOut):
			httperr.AbortWithError(c, http.StatusConflict, err, "No rooms available for this date", nil)
		case errors.Is(err, errs.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check_in date", nil)
		case errors.Is(err, errs.ErrDurationOutOfRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration out of range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the caller's bookings with cancellation terms
// @Tags bookings
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Success 200 {array} resdto.UserBookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no user in context"), "Unauthorized", nil)
		return
	}

	items, err := h.q.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserBookingList(items))
}

// @Summary Cancel booking
// @Description Cancel an own booking; the response reports the fee charged
// @Tags bookings
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no user in context"), "Unauthorized", nil)
		return
	}

	result, err := h.cmds.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrCancellationNotAllowed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking can no longer be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.CancelBookingResponse{
		BookingID: result.BookingID,
		Fee:       result.Fee,
	})
}
