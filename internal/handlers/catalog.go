package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"umrah-gateway/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Store
}

func NewCatalogHandler(catalogStore *catalog.Store) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalogStore,
	}
}

// ListPackages returns the public catalog. The free-application entry is
// excluded here but still reachable through GetPackage.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"packages": h.catalog.ListPublic(),
	})
}

func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	pkg, err := h.catalog.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"package": pkg,
	})
}
