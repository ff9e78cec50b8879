package delivery

import (
	"net/http"

	"easyshop_service/internal/middleware"
	"easyshop_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// RegisterRoutes expects router to already require authentication.
func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/products/:id", h.AddProduct)
		cart.PUT("/products/:id", h.UpdateQuantity)
	}
}

func (h *CartHandler) username(c *gin.Context) (string, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return principal.Username, true
}

func (h *CartHandler) GetCart(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	cart, err := h.useCase.GetCart(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve cart")
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", cart)
}

func (h *CartHandler) AddProduct(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}
	productID, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for cart add: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	cart, err := h.useCase.AddProduct(c.Request.Context(), username, productID)
	if err != nil {
		respondError(c, h.log, err, "Failed to add product to cart")
		return
	}

	h.log.Infof("Product %d added to cart of %s", productID, username)
	SuccessResponse(c, http.StatusCreated, "Product added to cart", cart)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}
	productID, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for cart update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for cart update: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.useCase.UpdateQuantity(c.Request.Context(), username, productID, *req.Quantity)
	if err != nil {
		respondError(c, h.log, err, "Failed to update cart")
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart updated successfully", cart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	cart, err := h.useCase.ClearCart(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.log, err, "Failed to clear cart")
		return
	}

	h.log.Infof("Cart cleared for %s", username)
	SuccessResponse(c, http.StatusOK, "Cart cleared successfully", cart)
}
