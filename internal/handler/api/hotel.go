package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	reqdto "world-hotels/internal/handler/dto/request"
	resdto "world-hotels/internal/handler/dto/response"
	"world-hotels/internal/handler/httperr"
	"world-hotels/internal/pkg/errs"
	"world-hotels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultQuoteNights = 1

type HotelHandler struct {
	q queries.HotelQueries
}

func NewHotelHandler(q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{q: q}
}

// @Summary List hotels
// @Description List hotels with seasonal display rates and availability for a date
// @Tags hotels
// @Produce json
// @Param city query string false "City name filter (substring match)"
// @Param max_price query number false "Maximum display rate in the requested currency"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param currency query string false "Display currency (default GBP)"
// @Success 200 {array} resdto.HotelListItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	params := queries.ListHotelsParams{
		City:     c.Query("city"),
		Currency: c.Query("currency"),
	}

	if v := c.Query("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_price", nil)
			return
		}
		params.MaxPrice = &maxPrice
	}

	if v := c.Query("check_in"); v != "" {
		checkIn, err := reqdto.ParseCheckInDate(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check_in date", nil)
			return
		}
		params.CheckIn = &checkIn
	}

	items, err := h.q.ListHotels(c.Request.Context(), params)
	if err != nil {
		slog.Error("list hotels failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelList(items))
}

// @Summary Quote a stay
// @Description Price a prospective stay without creating a booking
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param room_type query string true "Room type (Standard, Double, Family)"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param duration query int false "Nights (default 1)"
// @Param currency query string false "Display currency (default GBP)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/quote [get]
func (h *HotelHandler) Quote(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}

	var checkIn time.Time
	if v := c.Query("check_in"); v != "" {
		checkIn, err = reqdto.ParseCheckInDate(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check_in date", nil)
			return
		}
	} else {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidDate, "check_in is required", nil)
		return
	}

	nights := defaultQuoteNights
	if v := c.Query("duration"); v != "" {
		nights, err = strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration", nil)
			return
		}
	}

	view, err := h.q.Quote(c.Request.Context(), queries.QuoteParams{
		HotelID:  hotelID,
		RoomType: c.Query("room_type"),
		CheckIn:  checkIn,
		Nights:   nights,
		Currency: c.Query("currency"),
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		case errors.Is(err, errs.ErrDurationOutOfRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration out of range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
