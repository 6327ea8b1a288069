package repository

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/model"
)

// PromoRepo reads promotions for the customer dashboard.
type PromoRepo struct{ API *api.Client }

func NewPromoRepo(c *api.Client) *PromoRepo { return &PromoRepo{API: c} }

// List returns all promos.  The endpoint answers with either a bare array or
// a paginated envelope; both decode to the same slice.
func (r *PromoRepo) List(ctx context.Context) ([]model.Promo, error) {
	var out promoList
	if err := r.API.Get(ctx, "/promo/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// promoList unwraps {"results": [...]} and accepts [...] as is.
type promoList []model.Promo

func (l *promoList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var items []model.Promo
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var env struct {
		Results []model.Promo `json:"results"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	*l = env.Results
	return nil
}
