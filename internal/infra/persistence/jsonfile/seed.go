package jsonfile

import (
	"time"

	"storefront/internal/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// Default admin credentials for a freshly seeded store. Demo-grade on
// purpose; a real deployment replaces them immediately.
const (
	seedAdminEmail    = "admin@storefront.local"
	seedAdminPassword = "admin123"
)

// seedCatalog builds the demo catalog written on first run.
func seedCatalog() *catalogDocument {
	now := time.Now()

	products := []*entity.Product{
		{
			ID:          "1",
			Name:        "Hand-Thrown Ceramic Mug",
			Description: "Stoneware mug thrown on the wheel and glazed in a speckled ocean blue. Holds 350ml and is dishwasher safe.",
			Price:       1299,
			Category:    entity.CategoryPottery,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=400&h=400&fit=crop"}},
			Stock:       24,
			IsActive:    true,
			Featured:    true,
			Rating:      4.8,
			Reviews:     32,
		},
		{
			ID:          "2",
			Name:        "Handwoven Cotton Throw",
			Description: "Soft cotton throw blanket woven on a traditional loom with a herringbone pattern in warm terracotta.",
			Price:       3499,
			Category:    entity.CategoryTextiles,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1522758971460-1d21eed7dc1d?w=400&h=400&fit=crop"}},
			Stock:       12,
			IsActive:    true,
			Featured:    true,
			Rating:      4.6,
			Reviews:     18,
			Discount:    10,
		},
		{
			ID:          "3",
			Name:        "Silver Leaf Pendant",
			Description: "Sterling silver pendant cast from a real maple leaf, finished by hand and strung on an 18 inch chain.",
			Price:       4599,
			Category:    entity.CategoryJewelry,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400&h=400&fit=crop"}},
			Stock:       8,
			IsActive:    true,
			Featured:    false,
			Rating:      4.9,
			Reviews:     41,
		},
		{
			ID:          "4",
			Name:        "Olive Wood Serving Board",
			Description: "One-piece serving board cut from seasoned olive wood, sanded smooth and finished with food-safe oil.",
			Price:       2799,
			Category:    entity.CategoryKitchen,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1584346133934-a3afd2a33c4c?w=400&h=400&fit=crop"}},
			Stock:       15,
			IsActive:    true,
			Featured:    false,
			Rating:      4.7,
			Reviews:     23,
		},
		{
			ID:          "5",
			Name:        "Botanical Watercolor Print",
			Description: "Giclee print of an original watercolor study of wild fennel, on archival cotton paper. A3 size, unframed.",
			Price:       1899,
			Category:    entity.CategoryArt,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=400&h=400&fit=crop"}},
			Stock:       30,
			IsActive:    true,
			Featured:    true,
			Rating:      4.5,
			Reviews:     12,
		},
		{
			ID:          "6",
			Name:        "Marbled Paper Notebook",
			Description: "A5 notebook with hand-marbled covers, 160 pages of lay-flat, fountain-pen friendly paper. Each cover is unique.",
			Price:       899,
			Category:    entity.CategoryStationery,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1531346878377-a5be20888e57?w=400&h=400&fit=crop"}},
			Stock:       40,
			IsActive:    true,
			Featured:    false,
			Rating:      4.4,
			Reviews:     9,
			Discount:    15,
		},
		{
			ID:          "7",
			Name:        "Macrame Wall Hanging",
			Description: "Hand-knotted macrame hanging in natural cotton cord on a driftwood dowel, about 60cm wide.",
			Price:       2299,
			Category:    entity.CategoryHomeDecor,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1522444195799-478538b28823?w=400&h=400&fit=crop"}},
			Stock:       10,
			IsActive:    true,
			Featured:    false,
			Rating:      4.3,
			Reviews:     7,
		},
		{
			ID:          "8",
			Name:        "Turned Walnut Bowl",
			Description: "Salad bowl turned from a single walnut blank, 25cm across, with a hand-rubbed oil and wax finish.",
			Price:       5499,
			Category:    entity.CategoryWoodwork,
			Images:      []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1605433247501-698725862cb5?w=400&h=400&fit=crop"}},
			Stock:       6,
			IsActive:    true,
			Featured:    true,
			Rating:      5.0,
			Reviews:     15,
		},
	}

	for _, p := range products {
		p.CreatedAt = now
		p.UpdatedAt = now
	}

	return &catalogDocument{
		Products:      products,
		Orders:        []*entity.Order{},
		Carts:         []*entity.Cart{},
		Wishlists:     []*entity.Wishlist{},
		LastProductID: len(products),
		LastUpdated:   now,
	}
}

// seedUsers builds the initial user book with a single admin account.
func seedUsers() *usersDocument {
	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an out-of-range cost, which DefaultCost never is.
		panic(err)
	}

	return &usersDocument{
		Users: []*userRecord{
			{
				ID:        "1",
				Name:      "Store Admin",
				Email:     seedAdminEmail,
				Password:  string(hash),
				Role:      entity.RoleAdmin.String(),
				CreatedAt: now,
				LastLogin: now,
			},
		},
		LastUserID: 1,
	}
}
