package delivery

import (
	"net/http"
	"strconv"
	"strings"

	"easyshop_service/internal/domain"
	"easyshop_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router, admin gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.SearchProducts)
		products.GET("/:id", h.GetProductByID)
	}

	adminProducts := admin.Group("/products")
	{
		adminProducts.POST("", h.CreateProduct)
		adminProducts.PUT("/:id", h.UpdateProduct)
		adminProducts.DELETE("/:id", h.DeleteProduct)
	}
}

// parseProductFilter reads ?cat=&minPrice=&maxPrice=&subCategory=. Absent or
// blank parameters leave the matching filter unset.
func parseProductFilter(c *gin.Context) (domain.ProductFilter, string, bool) {
	var filter domain.ProductFilter

	if raw := strings.TrimSpace(c.Query("cat")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return filter, "Invalid cat parameter", false
		}
		filter.CategoryID = &id
	}
	if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, "Invalid minPrice parameter", false
		}
		filter.MinPrice = &v
	}
	if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, "Invalid maxPrice parameter", false
		}
		filter.MaxPrice = &v
	}
	filter.SubCategory = strings.TrimSpace(c.Query("subCategory"))
	return filter, "", true
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	filter, msg, ok := parseProductFilter(c)
	if !ok {
		h.log.Warnf("Rejected product search query %q: %s", c.Request.URL.RawQuery, msg)
		ErrorResponse(c, http.StatusBadRequest, msg)
		return
	}

	products, err := h.useCase.SearchProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve products")
		return
	}

	h.log.Infof("Retrieved %d products", len(products))
	if len(products) == 0 {
		SuccessResponse(c, http.StatusOK, "No products found", []domain.Product{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve product")
		return
	}
	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdProduct, err := h.useCase.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		respondError(c, h.log, err, "Failed to create product")
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", createdProduct.ID, createdProduct.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", createdProduct)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedProduct, err := h.useCase.UpdateProduct(c.Request.Context(), id, &product)
	if err != nil {
		respondError(c, h.log, err, "Failed to update product")
		return
	}

	h.log.Infof("Product updated successfully: ID %d", updatedProduct.ID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updatedProduct)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Failed to delete product")
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
