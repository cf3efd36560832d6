package jsonfile

import (
	"context"
	"sort"
	"strconv"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// orderRepository implements the domain.OrderRepository interface on top
// of the JSON store.
type orderRepository struct {
	store *Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var out *entity.Order

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		for _, o := range doc.Orders {
			if o.ID == id {
				out = cloneOrder(o)

				return nil
			}
		}

		return repository.ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// FindByUser retrieves all orders placed by the given user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var out []*entity.Order

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		out = make([]*entity.Order, 0)
		for _, o := range doc.Orders {
			if o.UserID == userID {
				out = append(out, cloneOrder(o))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(out)

	return out, nil
}

// All retrieves every order, newest first.
func (repo *orderRepository) All(ctx context.Context) ([]*entity.Order, error) {
	var out []*entity.Order

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		out = make([]*entity.Order, len(doc.Orders))
		for i, o := range doc.Orders {
			out[i] = cloneOrder(o)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(out)

	return out, nil
}

// Create persists a new order, assigning the next order ID when the
// record does not carry one.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	now := time.Now()

	return repo.store.updateCatalog(func(doc *catalogDocument) error {
		if order.ID == "" {
			doc.LastOrderID++
			order.ID = strconv.Itoa(doc.LastOrderID)
		}
		order.CreatedAt = now
		order.UpdatedAt = now

		doc.Orders = append(doc.Orders, cloneOrder(order))

		return nil
	})
}

// Update replaces an existing order record.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	return repo.store.updateCatalog(func(doc *catalogDocument) error {
		for i, o := range doc.Orders {
			if o.ID == order.ID {
				doc.Orders[i] = cloneOrder(order)

				return nil
			}
		}

		return repository.ErrOrderNotFound
	})
}

// Delete removes an order.
func (repo *orderRepository) Delete(ctx context.Context, id string) error {
	return repo.store.updateCatalog(func(doc *catalogDocument) error {
		for i, o := range doc.Orders {
			if o.ID == id {
				doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)

				return nil
			}
		}

		return repository.ErrOrderNotFound
	})
}

// cloneOrder deep-copies an order so callers never share slices or
// timestamps with the stored document.
func cloneOrder(o *entity.Order) *entity.Order {
	clone := *o
	clone.Items = append([]entity.LineItem(nil), o.Items...)
	clone.DeliveredAt = cloneTime(o.DeliveredAt)
	clone.CancelledAt = cloneTime(o.CancelledAt)
	clone.ReturnRequestedAt = cloneTime(o.ReturnRequestedAt)

	return &clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

// sortNewestFirst orders by creation time, falling back to the numeric ID
// for orders created within the same instant.
func sortNewestFirst(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		a, _ := strconv.Atoi(orders[i].ID)
		b, _ := strconv.Atoi(orders[j].ID)

		return a > b
	})
}
