package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"privstore/internal/domain/pricing"
	"privstore/internal/shared/utils"
)

type OfferResponse struct {
	PrivilegeType string `json:"privilege_type"`
	DurationType  string `json:"duration_type"`
	Price         int    `json:"price"`
}

// CatalogHandler serves the fixed price list.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListOffers(c *gin.Context) {
	offers := pricing.Offers()
	resp := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, OfferResponse{
			PrivilegeType: o.Tier.String(),
			DurationType:  o.Duration.String(),
			Price:         o.Price,
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
