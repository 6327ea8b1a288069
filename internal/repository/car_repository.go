package repository

import (
	"context"
	"sort"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/model"
)

// CarRepo reads the public car catalogue.
type CarRepo struct{ API *api.Client }

func NewCarRepo(c *api.Client) *CarRepo { return &CarRepo{API: c} }

// Recommended returns the home page recommendations, most popular first.
func (r *CarRepo) Recommended(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.API.Get(ctx, "/mobil/rekomendasi/", &cars); err != nil {
		return nil, err
	}
	sort.SliceStable(cars, func(i, j int) bool { return cars[i].Popularity > cars[j].Popularity })
	return cars, nil
}
