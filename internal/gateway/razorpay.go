package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"umrah-gateway/internal/logger"
)

var (
	ErrRazorpayAPIError       = errors.New("razorpay API error")
	ErrClientInitFailed       = errors.New("failed to initialize Razorpay client")
	ErrMalformedOrderResponse = errors.New("malformed order response from Razorpay")
)

// OrderParams describes a gateway order. Amount is in paise, the provider's
// minor currency unit.
type OrderParams struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]interface{}
}

// Order is the subset of the provider's order entity this service uses.
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

// OrderCreator is the seam between the intent service and the provider.
type OrderCreator interface {
	CreateOrder(ctx context.Context, params *OrderParams) (*Order, error)
}

// RazorpayClient creates orders through the official Razorpay SDK.
type RazorpayClient struct {
	client *razorpay.Client
	log    *logger.Logger
}

func NewRazorpayClient(keyID, keySecret string, log *logger.Logger) (*RazorpayClient, error) {
	if keyID == "" || keySecret == "" {
		log.Error("RAZORPAY", "RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set")
		return nil, ErrClientInitFailed
	}

	log.Info("RAZORPAY", "Razorpay client initialized successfully")
	return &RazorpayClient{
		client: razorpay.NewClient(keyID, keySecret),
		log:    log,
	}, nil
}

// CreateOrder calls the provider's order-creation API. The SDK does not take
// a context, so cancellation only short-circuits before the call is issued;
// an abandoned in-flight order is not rolled back at the provider.
func (c *RazorpayClient) CreateOrder(ctx context.Context, params *OrderParams) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":   params.Amount,
		"currency": params.Currency,
		"receipt":  params.Receipt,
		"notes":    params.Notes,
	}

	c.log.LogPayment("ORDER_CREATE", params.Receipt, fmt.Sprintf("Creating order for %d %s", params.Amount, params.Currency))

	body, err := c.client.Order.Create(data, nil)
	if err != nil {
		c.log.Error("RAZORPAY", fmt.Sprintf("Order creation failed: %v", err))
		return nil, fmt.Errorf("%w: %v", ErrRazorpayAPIError, err)
	}

	order, err := orderFromResponse(body)
	if err != nil {
		c.log.Error("RAZORPAY", fmt.Sprintf("Unexpected order response: %v", err))
		return nil, err
	}

	c.log.LogPayment("ORDER_CREATED", order.ID, fmt.Sprintf("Order created for receipt %s", params.Receipt))
	return order, nil
}

func orderFromResponse(body map[string]interface{}) (*Order, error) {
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: missing order id", ErrMalformedOrderResponse)
	}

	amount, err := toInt64(body["amount"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOrderResponse, err)
	}

	currency, _ := body["currency"].(string)

	return &Order{
		ID:       id,
		Amount:   amount,
		Currency: currency,
	}, nil
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case json.Number:
		return n.Int64()
	default:
		return 0, fmt.Errorf("unexpected amount type %T", v)
	}
}
