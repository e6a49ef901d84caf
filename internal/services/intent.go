package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"umrah-gateway/internal/catalog"
	"umrah-gateway/internal/gateway"
	"umrah-gateway/internal/logger"
	"umrah-gateway/internal/models"
	"umrah-gateway/internal/utils"
)

var (
	ErrInvalidPaymentType = errors.New("invalid payment type")
	ErrInvalidUPIID       = errors.New("invalid UPI ID format")
)

// DepositAmount is the fixed initial payment in whole INR, independent of the
// package price.
const DepositAmount int64 = 10000

const currencyINR = "INR"

// Placeholder metadata for absent customer fields. Metadata only; never used
// for validation or amount computation.
const (
	defaultCustomerName  = "Customer"
	defaultCustomerEmail = "customer@example.com"
	defaultCustomerPhone = "9999999999"
)

// IntentService turns a package selection into a payable order at the
// gateway. It holds no state across requests.
type IntentService struct {
	catalog *catalog.Store
	gateway gateway.OrderCreator
	log     *logger.Logger
}

func NewIntentService(catalogStore *catalog.Store, orderCreator gateway.OrderCreator, log *logger.Logger) *IntentService {
	return &IntentService{
		catalog: catalogStore,
		gateway: orderCreator,
		log:     log,
	}
}

// CreateIntent resolves the package, computes the amount owed and creates an
// order at the gateway. The returned receipt carries the gateway's order ID
// and its paise amount.
func (s *IntentService) CreateIntent(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderReceipt, error) {
	pkg, amount, err := s.resolveAmount(req.PackageID, req.PaymentType)
	if err != nil {
		return nil, err
	}

	receipt := utils.GenerateReceipt(pkg.ID)
	order, err := s.createOrder(ctx, amount, receipt, orderNotes(pkg, req.CustomerInfo, req.PaymentType))
	if err != nil {
		return nil, err
	}

	return &models.OrderReceipt{
		OrderID:     order.ID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		PackageName: pkg.Name,
	}, nil
}

// CreateUPIIntent is the UPI variant: it additionally validates the UPI ID
// and returns an advisory upi:// deep link built from locally known values.
func (s *IntentService) CreateUPIIntent(ctx context.Context, req *models.CreateUPIOrderRequest) (*models.UPIOrderReceipt, error) {
	if !strings.Contains(req.UPIID, "@") {
		s.log.Warn("PAYMENT", fmt.Sprintf("Rejected UPI intent with malformed UPI ID %q", req.UPIID))
		return nil, ErrInvalidUPIID
	}

	pkg, amount, err := s.resolveAmount(req.PackageID, req.PaymentType)
	if err != nil {
		return nil, err
	}

	notes := orderNotes(pkg, req.CustomerInfo, req.PaymentType)
	notes["upi_id"] = req.UPIID
	notes["payment_method"] = "upi"

	receipt := utils.GenerateUPIReceipt(pkg.ID)
	order, err := s.createOrder(ctx, amount, receipt, notes)
	if err != nil {
		return nil, err
	}

	return &models.UPIOrderReceipt{
		OrderReceipt: models.OrderReceipt{
			OrderID:     order.ID,
			Amount:      order.Amount,
			Currency:    order.Currency,
			PackageName: pkg.Name,
		},
		UPIID:    req.UPIID,
		DeepLink: upiDeepLink(req.UPIID, amount),
	}, nil
}

// resolveAmount is a pure function of (package, paymentType). The client
// never supplies a price, so the amount cannot be tampered with.
func (s *IntentService) resolveAmount(packageID int, paymentType models.PaymentType) (models.Package, int64, error) {
	pkg, err := s.catalog.GetByID(packageID)
	if err != nil {
		s.log.LogPayment("REJECTED", fmt.Sprintf("pkg-%d", packageID), "Package not found")
		return models.Package{}, 0, err
	}

	switch paymentType {
	case models.PaymentTypeFull:
		return pkg, pkg.Price, nil
	case models.PaymentTypeInitial:
		return pkg, DepositAmount, nil
	default:
		s.log.LogPayment("REJECTED", fmt.Sprintf("pkg-%d", packageID), fmt.Sprintf("Invalid payment type %q", paymentType))
		return models.Package{}, 0, ErrInvalidPaymentType
	}
}

func (s *IntentService) createOrder(ctx context.Context, amount int64, receipt string, notes map[string]interface{}) (*gateway.Order, error) {
	// Razorpay takes amounts in paise. Fixed provider convention, not
	// configurable.
	order, err := s.gateway.CreateOrder(ctx, &gateway.OrderParams{
		Amount:   amount * 100,
		Currency: currencyINR,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		s.log.Error("PAYMENT", fmt.Sprintf("Gateway order creation failed for receipt %s: %v", receipt, err))
		return nil, err
	}

	return order, nil
}

func orderNotes(pkg models.Package, customer models.CustomerInfo, paymentType models.PaymentType) map[string]interface{} {
	name := customer.Name
	if name == "" {
		name = defaultCustomerName
	}
	email := customer.Email
	if email == "" {
		email = defaultCustomerEmail
	}
	phone := customer.Phone
	if phone == "" {
		phone = defaultCustomerPhone
	}

	return map[string]interface{}{
		"package_name":   pkg.Name,
		"customer_name":  name,
		"customer_email": email,
		"customer_phone": phone,
		"payment_type":   string(paymentType),
	}
}

// upiDeepLink builds the advisory payment link. Amount is in whole INR; the
// link is never validated against the gateway. The UPI ID is interpolated
// verbatim so the "@" separator survives as UPI apps expect it.
func upiDeepLink(upiID string, amount int64) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=UmrahTours&am=%d&cu=INR&tn=UmrahPackagePayment", upiID, amount)
}
