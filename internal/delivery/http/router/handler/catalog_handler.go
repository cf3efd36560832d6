package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public catalog handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// productListPayload is the paging envelope of the catalog listing.
type productListPayload struct {
	Products   any `json:"products"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// List handles the filtered, paginated catalog listing.
func (h *CatalogHandler) List(c echo.Context) error {
	input := usecase.ListProductsInput{
		Keyword:  c.QueryParam("keyword"),
		Category: c.QueryParam("category"),
	}

	if v := c.QueryParam("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			input.Page = page
		}
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if minPrice, err := strconv.ParseInt(v, 10, 64); err == nil {
			input.MinPrice = &minPrice
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if maxPrice, err := strconv.ParseInt(v, 10, 64); err == nil {
			input.MaxPrice = &maxPrice
		}
	}
	if v := c.QueryParam("minRating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			input.MinRating = rating
		}
	}

	out, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productListPayload{
		Products:   out.Products,
		Total:      out.Total,
		Page:       out.Page,
		PageSize:   out.PageSize,
		TotalPages: out.TotalPages,
	}, "")
}

// Get handles a single product fetch.
func (h *CatalogHandler) Get(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Featured lists the products flagged for the storefront landing page.
func (h *CatalogHandler) Featured(c echo.Context) error {
	products, err := h.uc.FeaturedProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Categories lists the fixed catalog taxonomy.
func (h *CatalogHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Categories(c.Request().Context()), "")
}
