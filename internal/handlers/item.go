package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlist/service/internal/service"
	"github.com/foodlist/service/internal/transfer"
)

// ItemHandler serves the item endpoints. Reads return the display variant
// with denormalized adder and list names.
type ItemHandler struct {
	svc *service.ItemService
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// GET /api/v1/items/
func (h *ItemHandler) GetAll(c *gin.Context) {
	recs, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GET /api/v1/items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/v1/items/
func (h *ItemHandler) Add(c *gin.Context) {
	var rec transfer.ItemRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	created, err := h.svc.Add(c.Request.Context(), rec)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/v1/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var rec transfer.ItemRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	rec.ID = id
	updated, err := h.svc.Update(c.Request.Context(), rec)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/v1/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteByID(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
