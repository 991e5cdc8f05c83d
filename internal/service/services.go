package service

import (
	"github.com/MKhiriev/go-invoice-maker/internal/config"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/store"
)

// Services bundles every application service behind one constructor so that
// the transport layer receives a single wired value.
type Services struct {
	AuthService    AuthService
	InvoiceService InvoiceService
}

// NewServices constructs all services on top of the given repositories.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.Users, cfg, logger),
		InvoiceService: NewInvoiceService(repositories.Invoices, logger),
	}
}
