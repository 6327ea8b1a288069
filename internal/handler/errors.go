package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/view"
)

var statusMessages = map[int]string{
	http.StatusNotFound:         "Halaman yang Anda cari tidak ditemukan.",
	http.StatusMethodNotAllowed: "Metode tidak diizinkan.",
	http.StatusForbidden:        "Anda tidak memiliki akses ke halaman ini.",
	http.StatusBadRequest:       "Permintaan tidak valid.",
}

// ErrorHandler replaces echo's default error handler.  Browsers get the
// error page; clients asking for JSON get {"error": message}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, msg := http.StatusInternalServerError, msgGeneric

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		status = he.Code
		if m, ok := he.Message.(string); ok && m != "" && m != http.StatusText(he.Code) {
			msg = m
		} else if m, ok := statusMessages[he.Code]; ok {
			msg = m
		}
	case errors.Is(err, api.ErrNetwork):
		status, msg = http.StatusBadGateway, msgNetwork
	}
	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else if wantsJSON(c) {
		err = c.JSON(status, echo.Map{"error": msg})
	} else {
		p := newPage(c, "Terjadi Kesalahan")
		p.Data = view.ErrorData{Status: status, Message: msg}
		err = c.Render(status, "error", p)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
