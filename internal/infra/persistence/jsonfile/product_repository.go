package jsonfile

import (
	"context"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// productRepository implements the domain.ProductRepository interface on
// top of the JSON store.
type productRepository struct {
	store *Store
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain repository interface, adhering to dependency inversion.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

// List returns the filtered page of products and the count of matches
// before pagination. Filters combine with AND semantics; the page size is
// fixed.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	var page []*entity.Product
	var total int

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		matches := make([]*entity.Product, 0, len(doc.Products))
		for _, p := range doc.Products {
			if matchesFilter(p, filter) {
				matches = append(matches, p)
			}
		}
		total = len(matches)

		pageIndex := filter.Page
		if pageIndex < 1 {
			pageIndex = 1
		}
		start := (pageIndex - 1) * repository.PageSize
		if start >= len(matches) {
			page = []*entity.Product{}

			return nil
		}
		end := min(start+repository.PageSize, len(matches))

		page = make([]*entity.Product, end-start)
		for i, p := range matches[start:end] {
			clone := *p
			page[i] = &clone
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return page, total, nil
}

func matchesFilter(p *entity.Product, filter repository.ProductFilter) bool {
	if filter.ActiveOnly && !p.IsActive {
		return false
	}
	if filter.Category != "" && filter.Category != entity.CategoryAll && p.Category != filter.Category {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	if filter.MinRating > 0 && p.Rating < filter.MinRating {
		return false
	}
	if filter.Keyword != "" {
		needle := strings.ToLower(filter.Keyword)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}

	return true
}

// All returns every product in catalog order.
func (repo *productRepository) All(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		out = make([]*entity.Product, len(doc.Products))
		for i, p := range doc.Products {
			clone := *p
			out[i] = &clone
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var out *entity.Product

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		for _, p := range doc.Products {
			if p.ID == id {
				clone := *p
				out = &clone

				return nil
			}
		}

		return repository.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Create persists a new product, assigning the next catalog ID when the
// record does not carry one.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now()

	return repo.store.updateCatalog(func(doc *catalogDocument) error {
		if product.ID == "" {
			doc.LastProductID++
			product.ID = strconv.Itoa(doc.LastProductID)
		}
		product.CreatedAt = now
		product.UpdatedAt = now

		clone := *product
		doc.Products = append(doc.Products, &clone)

		return nil
	})
}

// Update replaces an existing product record.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	return repo.store.updateCatalog(func(doc *catalogDocument) error {
		for i, p := range doc.Products {
			if p.ID == product.ID {
				clone := *product
				doc.Products[i] = &clone

				return nil
			}
		}

		return repository.ErrProductNotFound
	})
}

// Delete removes a product and returns the removed record.
func (repo *productRepository) Delete(ctx context.Context, id string) (*entity.Product, error) {
	var removed *entity.Product

	err := repo.store.updateCatalog(func(doc *catalogDocument) error {
		for i, p := range doc.Products {
			if p.ID == id {
				removed = p
				doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)

				return nil
			}
		}

		return repository.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}
