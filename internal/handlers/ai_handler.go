package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
)

type AIHandler struct {
	stylist *ai.Stylist
}

func NewAIHandler(stylist *ai.Stylist) *AIHandler {
	return &AIHandler{stylist: stylist}
}

// StyleRecommendations nunca falha por causa da IA: sem resposta, lista vazia.
func (h *AIHandler) StyleRecommendations(c *gin.Context) {
	var in ai.StyleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in.FaceShape = strings.TrimSpace(in.FaceShape)
	in.HairType = strings.TrimSpace(in.HairType)
	in.Lifestyle = strings.TrimSpace(in.Lifestyle)

	httpresp.List(c, h.stylist.StyleRecommendations(c.Request.Context(), in))
}
