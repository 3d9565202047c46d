package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlist/service/internal/service"
	"github.com/foodlist/service/internal/transfer"
)

// HouseholdHandler serves the household endpoints.
type HouseholdHandler struct {
	svc *service.HouseholdService
}

// NewHouseholdHandler creates a HouseholdHandler.
func NewHouseholdHandler(svc *service.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{svc: svc}
}

// GET /api/v1/households/
func (h *HouseholdHandler) GetAll(c *gin.Context) {
	recs, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GET /api/v1/households/:id
func (h *HouseholdHandler) GetByID(c *gin.Context) {
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

// POST /api/v1/households/
func (h *HouseholdHandler) Add(c *gin.Context) {
	var rec transfer.HouseholdRecord
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

// PUT /api/v1/households/:id
func (h *HouseholdHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var rec transfer.HouseholdRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	rec.ID = id // the path identifier is authoritative
	updated, err := h.svc.Update(c.Request.Context(), rec)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/v1/households/:id
func (h *HouseholdHandler) Delete(c *gin.Context) {
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
