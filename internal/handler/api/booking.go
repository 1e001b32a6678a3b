package api

import (
	"context"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

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
// @Description Request a time-bounded booking of an available item
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), bookerID, req.ToCommand())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking; item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "Approve (true) or reject (false)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter", nil)
		return
	}
	view, err := h.cmds.Approve(c.Request.Context(), id, actorID, approved)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking; visible to its booker and the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, requesterID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the acting user's bookings filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings of own items
// @Description List bookings of the acting user's items filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, h.q.ListByOwner)
}

func (h *BookingHandler) list(
	c *gin.Context,
	fetch func(ctx context.Context, userID uuid.UUID, state booking.State) ([]*queries.BookingView, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	state, err := booking.ParseState(c.Query("state"))
	if err != nil {
		abortDomainError(c, errs.Mark(err, errs.ErrInvalidState))
		return
	}
	views, err := fetch(c.Request.Context(), userID, state)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
