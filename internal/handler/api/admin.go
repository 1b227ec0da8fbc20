package api

import (
	"errors"
	"net/http"

	reqdto "world-hotels/internal/handler/dto/request"
	resdto "world-hotels/internal/handler/dto/response"
	"world-hotels/internal/handler/httperr"
	"world-hotels/internal/pkg/errs"
	"world-hotels/internal/usecase/commands"
	"world-hotels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	cmds  commands.HotelCommands
	stats queries.StatsQueries
}

func NewAdminHandler(cmds commands.HotelCommands, stats queries.StatsQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, stats: stats}
}

// @Summary Add hotel
// @Description Register a new hotel; the peak rate is derived from the base rate
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AddHotelRequest true "Add hotel request"
// @Success 201 {object} resdto.HotelCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/hotels [post]
func (h *AdminHandler) AddHotel(c *gin.Context) {
	var req reqdto.AddHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.AddHotel(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Add hotel failed", nil)
		return
	}

	c.JSON(http.StatusCreated, &resdto.HotelCreatedResponse{ID: id})
}

// @Summary Update hotel rate
// @Description Replace a hotel's base rate; the peak rate follows automatically
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateRateRequest true "Update rate request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/hotels/{id}/rate [put]
func (h *AdminHandler) UpdateRate(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}

	var req reqdto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateRate(c.Request.Context(), hotelID, req.Rate); err != nil {
		switch {
		case errors.Is(err, errs.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove hotel
// @Description Delete a hotel and all of its bookings
// @Tags admin
// @Param id path string true "Hotel ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/hotels/{id} [delete]
func (h *AdminHandler) RemoveHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}

	if err := h.cmds.RemoveHotel(c.Request.Context(), hotelID); err != nil {
		switch {
		case errors.Is(err, errs.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Dashboard stats
// @Description Revenue totals, sales by check-in date and bookings per room type
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}
