package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/model"
)

// Backend auth endpoints.
const (
	pathLogin               = "/users/login/"
	pathPasswordResetReq    = "/users/password-reset/request/"
	pathPasswordResetVerify = "/users/password-reset/confirm/"
)

// AuthRepo covers login and the OTP password reset endpoints.
type AuthRepo struct{ API *api.Client }

func NewAuthRepo(c *api.Client) *AuthRepo { return &AuthRepo{API: c} }

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges a username/password for a credential pair.
func (r *AuthRepo) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	var pair model.TokenPair
	if err := r.API.Post(ctx, pathLogin, loginReq{Username: strings.TrimSpace(username), Password: password}, &pair); err != nil {
		return model.TokenPair{}, err
	}
	if pair.Access == "" {
		return model.TokenPair{}, ErrEmptyCredentials
	}
	return pair, nil
}

type resetReq struct {
	Email string `json:"email"`
}

// RequestPasswordReset asks the backend to email a 6-digit code.
func (r *AuthRepo) RequestPasswordReset(ctx context.Context, email string) error {
	return r.API.Post(ctx, pathPasswordResetReq, resetReq{Email: email}, nil)
}

// PasswordResetConfirm is the payload of the second reset step.
type PasswordResetConfirm struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ConfirmPasswordReset submits the code and the new password.
func (r *AuthRepo) ConfirmPasswordReset(ctx context.Context, in PasswordResetConfirm) error {
	return r.API.Post(ctx, pathPasswordResetVerify, in, nil)
}
