package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/repository"
	"github.com/iliyamo/car-rental-web/internal/session"
)

const (
	forgotPath = "/forgot-password"
	verifyPath = "/verify-otp"
)

type forgotForm struct {
	Email string `form:"email" validate:"required,email"`
}

// verifyForm is the second reset step.  Everything here is checked before
// the backend is contacted.
type verifyForm struct {
	Email           string `form:"email" validate:"required,email"`
	OTP             string `form:"otp" validate:"required,len=6"`
	NewPassword     string `form:"new_password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

func (h *AuthHandler) ForgotForm(c echo.Context) error {
	p := newPage(c, "Lupa Kata Sandi")
	p.Form = map[string]string{"email": strings.TrimSpace(c.QueryParam("email"))}
	return c.Render(http.StatusOK, "forgot_password", p)
}

// ForgotSubmit asks the backend to email a code, then moves on to the
// verification step carrying the email in the query.
func (h *AuthHandler) ForgotSubmit(c echo.Context) error {
	var f forgotForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f.Email = strings.TrimSpace(f.Email)
	p := newPage(c, "Lupa Kata Sandi")
	p.Form = map[string]string{"email": f.Email}

	if errs, err := validateForm(c, &f); err != nil {
		return err
	} else if errs != nil {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "forgot_password", p)
	}
	if err := h.Auth.RequestPasswordReset(c.Request().Context(), f.Email); err != nil {
		p.Errors = map[string]string{}
		if !applyFieldErrors(err, p.Errors, "email") {
			p.Error = failureMessage(err, "Gagal mengirim kode OTP. Silakan coba lagi.")
		}
		return c.Render(formStatus(err), "forgot_password", p)
	}
	return c.Redirect(http.StatusSeeOther, verifyPath+"?email="+url.QueryEscape(f.Email))
}

// VerifyForm renders the code entry step with the email fixed read-only.
// Without an email there is nothing to verify, so the visitor restarts.
func (h *AuthHandler) VerifyForm(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		return c.Redirect(http.StatusSeeOther, forgotPath)
	}
	p := newPage(c, "Verifikasi OTP")
	p.Form = map[string]string{"email": email}
	return c.Render(http.StatusOK, "verify_otp", p)
}

// VerifySubmit sets the new password.  A mismatched confirmation or a short
// code is rejected here without any backend call.
func (h *AuthHandler) VerifySubmit(c echo.Context) error {
	var f verifyForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f.Email = strings.TrimSpace(f.Email)
	f.OTP = strings.TrimSpace(f.OTP)
	if f.Email == "" {
		return c.Redirect(http.StatusSeeOther, forgotPath)
	}
	p := newPage(c, "Verifikasi OTP")
	p.Form = map[string]string{"email": f.Email, "otp": f.OTP}

	if errs, err := validateForm(c, &f); err != nil {
		return err
	} else if errs != nil {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "verify_otp", p)
	}
	err := h.Auth.ConfirmPasswordReset(c.Request().Context(), repository.PasswordResetConfirm{
		Email:           f.Email,
		OTP:             f.OTP,
		NewPassword:     f.NewPassword,
		ConfirmPassword: f.ConfirmPassword,
	})
	if err != nil {
		p.Errors = map[string]string{}
		if !applyFieldErrors(err, p.Errors, "otp", "new_password", "confirm_password") {
			p.Error = failureMessage(err, "Kode OTP tidak valid atau sudah kedaluwarsa.")
		}
		return c.Render(formStatus(err), "verify_otp", p)
	}
	return c.Redirect(http.StatusSeeOther, session.LoginPath+"?reset=success")
}
