package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/touchlinehq/touchline/pkg/responses"
)

var validCategories = map[string]bool{
	CategoryPositions:        true,
	CategoryAttributesInPos:  true,
	CategoryAttributesOutPos: true,
	CategorySpaceOptions:     true,
	CategoryEquipment:        true,
}

// CatalogController serves the read-only system default catalog.
type CatalogController struct {
	repo CatalogRepository
}

func NewCatalogController(repo CatalogRepository) *CatalogController {
	return &CatalogController{repo: repo}
}

// ListCategory godoc
// @Summary List catalog entries for a category
// @Tags Catalog
// @Produce json
// @Param category path string true "Category key" Enums(positions, attributes_in_possession, attributes_out_of_possession, space_options, equipment_options)
// @Success 200 {object} responses.SuccessResponse{data=[]Entry}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /catalog/categories/{category} [get]
func (cc *CatalogController) ListCategory(c *gin.Context) {
	category := c.Param("category")
	if !validCategories[category] {
		responses.BadRequest(c, "Unknown catalog category: "+category)
		return
	}
	entries, err := cc.repo.ListByCategory(category)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve catalog: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Catalog retrieved successfully", entries)
}

// ListPositionDefaults godoc
// @Summary List system-default attribute keys per position
// @Tags Catalog
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]PositionDefault}
// @Security ApiKeyAuth
// @Router /catalog/position-defaults [get]
func (cc *CatalogController) ListPositionDefaults(c *gin.Context) {
	defs, err := cc.repo.ListPositionDefaults()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve position defaults: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Position defaults retrieved successfully", defs)
}
