package repository

import (
	"context"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/model"
)

const pathProfile = "/users/profile/"

// ProfileRepo reads and updates the signed-in customer's account settings.
type ProfileRepo struct{ API *api.Client }

func NewProfileRepo(c *api.Client) *ProfileRepo { return &ProfileRepo{API: c} }

// Get loads the current profile.
func (r *ProfileRepo) Get(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	err := r.API.Get(ctx, pathProfile, &p)
	return p, err
}

// Update saves the settings form.  Without an avatar the body is JSON; with
// one it becomes a multipart upload so the transport sets the boundary.
func (r *ProfileRepo) Update(ctx context.Context, in model.ProfileUpdate) (model.Profile, error) {
	var body any = in
	if in.Avatar != nil && len(in.Avatar.Data) > 0 {
		field := in.Avatar.FieldName
		if field == "" {
			field = "avatar"
		}
		body = &api.Multipart{
			Fields: map[string]string{
				"full_name": in.FullName,
				"phone":     in.Phone,
				"address":   in.Address,
			},
			Files: []api.File{{
				Field:       field,
				Name:        in.Avatar.FileName,
				ContentType: in.Avatar.ContentType,
				Data:        in.Avatar.Data,
			}},
		}
	}
	var p model.Profile
	err := r.API.Patch(ctx, pathProfile, body, &p)
	return p, err
}
