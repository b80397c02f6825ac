package controllers

import (
	"github.com/gin-gonic/gin"

	"alpinepulse/internal/services"
	"alpinepulse/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (ct *CatalogController) ListCities(c *gin.Context) {
	cities, err := ct.catalogService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

func (ct *CatalogController) ListAttractions(c *gin.Context) {
	attractions, err := ct.catalogService.ListAttractions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

func (ct *CatalogController) ListThemes(c *gin.Context) {
	utils.RespondSuccess(c, ct.catalogService.Themes(), "Themes fetched successfully")
}
