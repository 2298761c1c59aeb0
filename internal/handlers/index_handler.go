package handlers

import (
	"net/http"

	"github.com/coolleighton/InventoryApp/internal/services"
	"github.com/coolleighton/InventoryApp/internal/utils"
	"github.com/coolleighton/InventoryApp/pkg/logger"

	"github.com/gin-gonic/gin"
)

type IndexHandler struct {
	inventory *services.InventoryService
	logger    *logger.Logger
}

func NewIndexHandler(inventory *services.InventoryService, log *logger.Logger) *IndexHandler {
	return &IndexHandler{inventory: inventory, logger: log}
}

// Index renders the record counts of both categories.
func (h *IndexHandler) Index(c *gin.Context) {
	counts, err := h.inventory.Counts(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to count cars")
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, utils.ErrInternalServer)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title":  utils.TitleIndex,
		"counts": counts,
	})
}
