package api

import "github.com/dmitrijs2005/storefront/internal/server/models"

func ProductFromModel(p *models.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Category:  p.Category,
		NewPrice:  p.NewPrice,
		OldPrice:  p.OldPrice,
		Date:      p.Date,
		Available: p.Available,
	}
}

func ProductsFromModels(items []*models.Product) []Product {
	out := make([]Product, len(items))
	for i, p := range items {
		out[i] = ProductFromModel(p)
	}
	return out
}

func (r AddProductRequest) Model() *models.Product {
	return &models.Product{
		Name:     r.Name,
		Image:    r.Image,
		Category: r.Category,
		NewPrice: r.NewPrice,
		OldPrice: r.OldPrice,
	}
}
