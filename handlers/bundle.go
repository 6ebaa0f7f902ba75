package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers the route registry wires up.
type HandlerBundle struct {
	// Calendar and pricing.
	GetCalendarHandler gin.HandlerFunc
	GetQuoteHandler    gin.HandlerFunc

	// Booking funnel.
	StartSessionHandler   gin.HandlerFunc
	UpdateSessionHandler  gin.HandlerFunc
	ConfirmSessionHandler gin.HandlerFunc
	CancelSessionHandler  gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	CancelBookingHandler  gin.HandlerFunc

	// Availability administration.
	UpsertAvailabilityHandler gin.HandlerFunc
	ListAvailabilityHandler   gin.HandlerFunc
	DeleteAvailabilityHandler gin.HandlerFunc
}
