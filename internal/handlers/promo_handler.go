package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/internal/promo"
)

// PromoHandler exposes the promo popup gate. GetPopup reports the current
// state; Open and Close are the manual overrides that bypass the daily gate.
type PromoHandler struct {
	gate  *promo.Gate
	offer models.PromoOffer
}

func NewPromoHandler(gate *promo.Gate, offer models.PromoOffer) *PromoHandler {
	return &PromoHandler{gate: gate, offer: offer}
}

// GetPopup handles GET /api/v1/promo/popup
func (h *PromoHandler) GetPopup(c *gin.Context) {
	c.JSON(http.StatusOK, models.PromoPopupResponse{
		Visible: h.gate.Visible(),
		Offer:   h.offer,
	})
}

// OpenPopup handles POST /api/v1/promo/popup/open
func (h *PromoHandler) OpenPopup(c *gin.Context) {
	h.gate.Open()
	c.JSON(http.StatusOK, gin.H{"visible": true})
}

// ClosePopup handles POST /api/v1/promo/popup/close
func (h *PromoHandler) ClosePopup(c *gin.Context) {
	h.gate.Close()
	c.JSON(http.StatusOK, gin.H{"visible": false})
}
