package handler

import (
	"io"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultMaxUploadFiles  = 10
	defaultMaxFileSizeMB   = 10
	uploadFormField        = "images"
	uploadPresetQueryParam = "preset"
)

// AdminHandler holds dependencies for the privileged management handlers.
type AdminHandler struct {
	uc           usecase.AdminUsecase
	maxFiles     int
	maxFileBytes int64
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, cfg *config.Config) *AdminHandler {
	maxFiles := defaultMaxUploadFiles
	maxFileSizeMB := defaultMaxFileSizeMB
	if cfg.Upload != nil {
		if cfg.Upload.MaxFiles > 0 {
			maxFiles = cfg.Upload.MaxFiles
		}
		if cfg.Upload.MaxFileSizeMB > 0 {
			maxFileSizeMB = cfg.Upload.MaxFileSizeMB
		}
	}

	return &AdminHandler{
		uc:           uc,
		maxFiles:     maxFiles,
		maxFileBytes: int64(maxFileSizeMB) << 20,
	}
}

type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       int64    `json:"price" validate:"min=0"`
	Category    string   `json:"category" validate:"required"`
	Stock       int      `json:"stock" validate:"min=0"`
	IsActive    *bool    `json:"isActive"`
	Featured    bool     `json:"featured"`
	Discount    int64    `json:"discount" validate:"min=0,max=100"`
	Images      []string `json:"images"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *int64   `json:"price" validate:"omitempty,min=0"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock" validate:"omitempty,min=0"`
	IsActive    *bool    `json:"isActive"`
	Featured    *bool    `json:"featured"`
	Discount    *int64   `json:"discount" validate:"omitempty,min=0,max=100"`
	Images      []string `json:"images"`
}

type featuredRequest struct {
	Featured bool `json:"featured"`
}

type imagesRequest struct {
	Images []string `json:"images" validate:"required"`
}

type orderStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"trackingNumber"`
}

type userRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func productInput(req productRequest) usecase.ProductInput {
	return usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
		Featured:    req.Featured,
		Discount:    req.Discount,
		ImageURLs:   req.Images,
	}
}

// ListProducts returns the whole catalog, inactive products included.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// CreateProduct adds a catalog record.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), productInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct merges a partial update into a product.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
		Featured:    req.Featured,
		Discount:    req.Discount,
		ImageURLs:   req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes a product.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	removed, err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, removed, "Product deleted")
}

// SetFeatured flips the featured flag on a product.
func (h *AdminHandler) SetFeatured(c echo.Context) error {
	var req featuredRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid featured input")
	}

	product, err := h.uc.SetFeatured(c.Request().Context(), c.Param("id"), req.Featured)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// ListImages returns the product's image list.
func (h *AdminHandler) ListImages(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product.Images, "")
}

// SetImages replaces the product's image list wholesale.
func (h *AdminHandler) SetImages(c echo.Context) error {
	var req imagesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid images input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.SetImages(c.Request().Context(), c.Param("id"), req.Images)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Images replaced")
}

// UploadImage stores a single multipart file and attaches it to the
// product.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No file in upload")
	}
	if file.Size > h.maxFileBytes {
		return response.BindingError(c, "FILE_TOO_LARGE",
			"File "+file.Filename+" exceeds the upload size limit")
	}

	preset := service.CompressionPreset(c.QueryParam(uploadPresetQueryParam))
	if preset == "" {
		preset = service.PresetAuto
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer func() { _ = src.Close() }()

	stored, err := h.uc.UploadImages(c.Request().Context(), c.Param("id"), []usecase.ImageUploadInput{{
		Filename: file.Filename,
		Size:     file.Size,
		Content:  src,
		Preset:   preset,
	}})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, stored[0], "Image uploaded")
}

// UploadImages stores the files of a multipart upload and attaches them
// to the product.
func (h *AdminHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart upload")
	}

	files := form.File[uploadFormField]
	if len(files) == 0 {
		return response.BindingError(c, "INVALID_INPUT", "No files in upload")
	}
	if len(files) > h.maxFiles {
		return response.BindingError(c, "TOO_MANY_FILES",
			"At most "+strconv.Itoa(h.maxFiles)+" files per upload")
	}

	preset := service.CompressionPreset(c.QueryParam(uploadPresetQueryParam))
	if preset == "" {
		preset = service.PresetAuto
	}

	uploads := make([]usecase.ImageUploadInput, 0, len(files))
	opened := make([]io.Closer, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for _, file := range files {
		if file.Size > h.maxFileBytes {
			return response.BindingError(c, "FILE_TOO_LARGE",
				"File "+file.Filename+" exceeds the upload size limit")
		}

		src, err := file.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		opened = append(opened, src)

		uploads = append(uploads, usecase.ImageUploadInput{
			Filename: file.Filename,
			Size:     file.Size,
			Content:  src,
			Preset:   preset,
		})
	}

	stored, err := h.uc.UploadImages(c.Request().Context(), c.Param("id"), uploads)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, stored, "Images uploaded")
}

// RemoveImage drops the image at the given index from the product.
func (h *AdminHandler) RemoveImage(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Image index must be a number")
	}

	product, err := h.uc.RemoveImage(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Image removed")
}

// ListOrders returns every order, newest first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateOrderStatus advances an order along the fulfillment chain.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), usecase.UpdateOrderStatusInput{
		OrderID:        c.Param("id"),
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// DeleteOrder removes a pending or cancelled order.
func (h *AdminHandler) DeleteOrder(c echo.Context) error {
	if err := h.uc.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}

// ListUsers returns every account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// GetUser returns one account.
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateUserRole changes an account's role.
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req userRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUserRole(c.Request().Context(), usecase.UpdateUserRoleInput{
		UserID: c.Param("id"),
		Role:   req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User role updated")
}

// DeleteUser removes an account.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// Stats aggregates the dashboard numbers.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
