package jsonfile

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(userID string) *entity.Order {
	o := &entity.Order{
		UserID: userID,
		Items: []entity.LineItem{
			{ProductID: "1", Name: "Hand-Thrown Ceramic Mug", Price: 1299, Quantity: 2},
		},
		ShippingAddress: entity.ShippingAddress{
			Name: "Asha Rao", Phone: "9876543210",
			Street: "12 Potter Lane", City: "Pune", State: "MH", Pincode: "411001",
		},
		PaymentInfo: entity.PaymentInfo{Method: entity.PaymentCOD, Status: "pending"},
		Status:      entity.OrderPending,
	}
	o.ComputeTotals()

	return o
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(openTestStore(t, t.TempDir()))

	order := testOrder("7")
	require.NoError(t, repo.Create(ctx, order))
	assert.Equal(t, "1", order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.TotalPrice, got.TotalPrice)
	assert.Equal(t, entity.OrderPending, got.Status)

	_, err = repo.FindByID(ctx, "999")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_FindByUser_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(openTestStore(t, t.TempDir()))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, testOrder("7")))
	}
	require.NoError(t, repo.Create(ctx, testOrder("8")))

	mine, err := repo.FindByUser(ctx, "7")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for i := 1; i < len(mine); i++ {
		prev, _ := mine[i-1], mine[i]
		assert.False(t, mine[i].CreatedAt.After(prev.CreatedAt))
	}
	// Within the same timestamp the higher ID comes first.
	assert.Equal(t, "3", mine[0].ID)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "4", all[0].ID)

	none, err := repo.FindByUser(ctx, "none")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(openTestStore(t, t.TempDir()))

	order := testOrder("7")
	require.NoError(t, repo.Create(ctx, order))

	now := time.Now()
	order.Status = entity.OrderProcessing
	order.TrackingNumber = "TRK-1001"
	order.DeliveredAt = &now
	require.NoError(t, repo.Update(ctx, order))

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, got.Status)
	assert.Equal(t, "TRK-1001", got.TrackingNumber)
	require.NotNil(t, got.DeliveredAt)

	require.NoError(t, repo.Delete(ctx, order.ID))
	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, order.ID), repository.ErrOrderNotFound)
}
