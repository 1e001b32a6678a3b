package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Description Register a shareable item owned by the acting user
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToCommand())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Patch an item; only its owner may change it
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, actorID, req.ToCommand())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Get an item with its comments
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Description List the acting user's items with last/next booking info
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Success 200 {array} resdto.OwnerItemResponse
// @Failure 400 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerItemViews(views))
}

// @Summary Search items
// @Description Search available items by name or description substring
// @Tags items
// @Produce json
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Delete item
// @Description Delete an item
// @Tags items
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on item
// @Description Leave feedback after a finished booking of the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.AddCommentRequest true "Comment request"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "X-Sharer-User-Id header required", nil)
		return
	}
	var req reqdto.AddCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddComment(c.Request.Context(), id, authorID, req.Text)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
