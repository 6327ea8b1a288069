package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/model"
	"github.com/iliyamo/car-rental-web/internal/repository"
)

// maxAvatarBytes bounds the avatar upload forwarded to the backend.
const maxAvatarBytes = 2 << 20

var avatarTypes = map[string]bool{"image/png": true, "image/jpeg": true}

// CustomerHandler serves the customer dashboard.
type CustomerHandler struct {
	Shells   *Shells
	Profiles *repository.ProfileRepo
	Promos   *repository.PromoRepo
}

func NewCustomerHandler(shells *Shells, profiles *repository.ProfileRepo, promos *repository.PromoRepo) *CustomerHandler {
	if shells == nil || profiles == nil || promos == nil {
		panic("nil dependency passed to NewCustomerHandler")
	}
	return &CustomerHandler{Shells: shells, Profiles: profiles, Promos: promos}
}

func (h *CustomerHandler) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard", h.Shells.Page(c, layout.KindCustomer, "Dashboard"))
}

// Settings shows the profile form filled from the backend.
func (h *CustomerHandler) Settings(c echo.Context) error {
	p := h.Shells.Page(c, layout.KindCustomer, "Pengaturan Akun")
	prof, err := h.Profiles.Get(c.Request().Context())
	if err != nil {
		p.Error = failureMessage(err, "Data akun belum dapat dimuat.")
	}
	p.Data = prof
	p.Form = map[string]string{"full_name": prof.FullName, "phone": prof.Phone, "address": prof.Address}
	if c.QueryParam("saved") == "1" {
		p.Success = "Pengaturan akun berhasil disimpan."
	}
	return c.Render(http.StatusOK, "settings", p)
}

// SaveSettings updates the profile.  An attached avatar turns the request
// into a multipart upload.
func (h *CustomerHandler) SaveSettings(c echo.Context) error {
	var in model.ProfileUpdate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	p := h.Shells.Page(c, layout.KindCustomer, "Pengaturan Akun")
	p.Form = map[string]string{"full_name": in.FullName, "phone": in.Phone, "address": in.Address}

	errs, err := validateForm(c, &in)
	if err != nil {
		return err
	}
	if errs == nil {
		errs = map[string]string{}
	}
	avatar, msg := readAvatar(c)
	if msg != "" {
		errs["avatar"] = msg
	}
	if len(errs) > 0 {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "settings", p)
	}
	in.Avatar = avatar

	if _, err := h.Profiles.Update(c.Request().Context(), in); err != nil {
		p.Errors = map[string]string{}
		if !applyFieldErrors(err, p.Errors, "full_name", "phone", "address", "avatar") {
			p.Error = failureMessage(err, "Gagal menyimpan pengaturan akun.")
		}
		return c.Render(formStatus(err), "settings", p)
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard/settings?saved=1")
}

// readAvatar returns the uploaded avatar, nil when none was chosen, or a
// message explaining why the file was rejected.
func readAvatar(c echo.Context) (*model.Upload, string) {
	fh, err := c.FormFile("avatar")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) || (err == nil && fh.Size == 0) {
		return nil, ""
	}
	if err != nil {
		return nil, "Berkas tidak dapat dibaca."
	}
	if fh.Size > maxAvatarBytes {
		return nil, "Ukuran foto maksimal 2 MB."
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "Berkas tidak dapat dibaca."
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxAvatarBytes+1))
	if err != nil {
		return nil, "Berkas tidak dapat dibaca."
	}
	if len(data) > maxAvatarBytes {
		return nil, "Ukuran foto maksimal 2 MB."
	}
	ct := http.DetectContentType(data)
	if !avatarTypes[ct] {
		return nil, "Foto harus berformat PNG atau JPEG."
	}
	return &model.Upload{FieldName: "avatar", FileName: fh.Filename, ContentType: ct, Data: data}, ""
}

// Promo lists promo codes.  The backend may answer with a bare list or a
// paginated envelope; both render the same.
func (h *CustomerHandler) Promo(c echo.Context) error {
	p := h.Shells.Page(c, layout.KindCustomer, "Promo")
	promos, err := h.Promos.List(c.Request().Context())
	if err != nil {
		p.Error = failureMessage(err, "Promo belum dapat dimuat.")
	}
	p.Data = promos
	return c.Render(http.StatusOK, "promo", p)
}
