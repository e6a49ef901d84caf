package models

type PaymentType string

const (
	PaymentTypeFull    PaymentType = "full"
	PaymentTypeInitial PaymentType = "initial"
)

// CustomerInfo is forwarded to the gateway as order metadata. All fields are
// optional; missing values get placeholder defaults before leaving the
// service. It is never used for validation or amount computation.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateOrderRequest struct {
	PackageID    int          `json:"packageId"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	PaymentType  PaymentType  `json:"paymentType"`
}

type CreateUPIOrderRequest struct {
	PackageID    int          `json:"packageId"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	PaymentType  PaymentType  `json:"paymentType"`
	UPIID        string       `json:"upiId"`
}

// OrderReceipt is what the caller gets back after an order is created at the
// gateway. Amount is in paise, exactly as the gateway reported it.
type OrderReceipt struct {
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	PackageName string `json:"package_name"`
}

type UPIOrderReceipt struct {
	OrderReceipt
	UPIID    string `json:"upi_id"`
	DeepLink string `json:"deep_link"`
}

// VerifyPaymentRequest carries the identifiers and signature Razorpay hands
// to the frontend after checkout. Field names follow the provider's callback
// payload.
type VerifyPaymentRequest struct {
	OrderID      string       `json:"razorpay_order_id"`
	PaymentID    string       `json:"razorpay_payment_id"`
	Signature    string       `json:"razorpay_signature"`
	PackageID    int          `json:"packageId"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

type VerificationResult struct {
	Verified          bool   `json:"verified"`
	BookingID         string `json:"booking_id,omitempty"`
	IsFreeApplication bool   `json:"is_free_application"`
}

// PaymentFailureRequest reports a checkout failure from the frontend. Reason
// maps the request's "error" field; the name is kept distinct from any Go
// error value handled alongside it.
type PaymentFailureRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Reason    string `json:"error"`
}
