package delivery

import (
	"net/http"

	"easyshop_service/internal/domain"
	"easyshop_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes mounts reads on router and mutations on admin, which is
// expected to carry the authentication and role middleware.
func (h *CategoryHandler) RegisterRoutes(router, admin gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.GET("/:id/products", h.ListProductsByCategory)
	}

	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", h.CreateCategory)
		adminCategories.PUT("/:id", h.UpdateCategory)
		adminCategories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve categories")
		return
	}

	h.log.Infof("Retrieved %d categories", len(categories))
	if len(categories) == 0 {
		SuccessResponse(c, http.StatusOK, "No categories found", []domain.Category{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve category")
		return
	}
	SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) ListProductsByCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	products, err := h.useCase.ListProductsByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve products")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdCategory, err := h.useCase.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		respondError(c, h.log, err, "Failed to create category")
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", createdCategory.ID, createdCategory.Name)
	SuccessResponse(c, http.StatusCreated, "Category created successfully", createdCategory)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var categoryUpdates domain.Category
	if err := c.ShouldBindJSON(&categoryUpdates); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedCategory, err := h.useCase.UpdateCategory(c.Request.Context(), id, &categoryUpdates)
	if err != nil {
		respondError(c, h.log, err, "Failed to update category")
		return
	}

	h.log.Infof("Category updated successfully: ID %d", updatedCategory.ID)
	SuccessResponse(c, http.StatusOK, "Category updated successfully", updatedCategory)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Failed to delete category")
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}
