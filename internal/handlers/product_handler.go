package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"storeman/internal/errs"
	"storeman/internal/middleware"
	"storeman/internal/models"
	"storeman/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Put("/:id/change-price", h.HandleChangePrice)
	productRoutes.Put("/:id/change-stock", h.HandleChangeStock)
	productRoutes.Put("/:id/change-category", h.HandleChangeCategory)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// parseID extracts the numeric product ID from the route path.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, errs.Validationf("invalid product id '%s'", c.Params("id"))
	}
	return uint(id), nil
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	log.Printf("Response contains %d products", len(products))
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product from a validated DTO.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var dto models.ProductDto
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(dto); err != nil {
		return validationErrorResponse(c, err)
	}

	created, err := h.service.CreateProduct(middleware.CallerUsername(c), &dto)
	if err != nil {
		return err
	}
	log.Printf("New product saved with ID: %d", created.ID)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct overwrites all fields of an existing product.
//
// Absence is signaled by services.ErrUpdateTargetMissing, which only this
// handler translates to 404; the app-level error handler does not know it.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var dto models.ProductDto
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(dto); err != nil {
		return validationErrorResponse(c, err)
	}

	updated, err := h.service.UpdateProduct(middleware.CallerUsername(c), id, &dto)
	if err != nil {
		if errors.Is(err, services.ErrUpdateTargetMissing) {
			log.Printf("Product update failed - no product found with ID %d", id)
			return c.Status(fiber.StatusNotFound).SendString(fmt.Sprintf("Resource was not found: product not found for id %d", id))
		}
		return err
	}
	return c.JSON(updated)
}

// HandleChangePrice sets a new price on a product via the newPrice query param.
func (h *ProductHandler) HandleChangePrice(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	raw := c.Query("newPrice")
	newPrice, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errs.Validationf("invalid newPrice '%s'", raw)
	}

	updated, err := h.service.ChangePrice(id, newPrice)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// HandleChangeStock sets a new stock quantity via the newStockQuantity query param.
func (h *ProductHandler) HandleChangeStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	raw := c.Query("newStockQuantity")
	newQuantity, err := strconv.Atoi(raw)
	if err != nil {
		return errs.Validationf("invalid newStockQuantity '%s'", raw)
	}

	updated, err := h.service.ChangeStockQuantity(id, newQuantity)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// HandleChangeCategory sets a new category via the newCategory query param.
func (h *ProductHandler) HandleChangeCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	newCategory := c.Query("newCategory")
	if newCategory == "" {
		return errs.Validationf("newCategory query parameter is required")
	}

	updated, err := h.service.ChangeCategory(id, newCategory)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(middleware.CallerUsername(c), id); err != nil {
		return err
	}
	log.Printf("Deletion confirmed for product ID %d", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// validationErrorResponse writes the per-field 400 response for a failed
// DTO constraint check.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
