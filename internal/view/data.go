package view

import (
	"github.com/iliyamo/car-rental-web/internal/content"
	"github.com/iliyamo/car-rental-web/internal/model"
)

// HomeData is the payload of the home page.
type HomeData struct {
	Cars         []model.Car
	Testimonials []content.Testimonial
}

// ErrorData is the payload of the error page.
type ErrorData struct {
	Status  int
	Message string
}

// MeasureData is the payload of the viewport measurement page.
type MeasureData struct {
	Next string
}
