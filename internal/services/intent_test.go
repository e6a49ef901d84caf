package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"umrah-gateway/internal/catalog"
	"umrah-gateway/internal/gateway"
	"umrah-gateway/internal/logger"
	"umrah-gateway/internal/models"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(ctx context.Context, params *gateway.OrderParams) (*gateway.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Order), args.Error(1)
}

func newIntentService(gw gateway.OrderCreator) *IntentService {
	return NewIntentService(catalog.NewStore(catalog.Default()), gw, logger.NewLogger())
}

func TestCreateIntentAmounts(t *testing.T) {
	tests := []struct {
		name        string
		packageID   int
		paymentType models.PaymentType
		wantPaise   int64
	}{
		{name: "full payment uses package price", packageID: 1, paymentType: models.PaymentTypeFull, wantPaise: 6999900},
		{name: "full payment premium", packageID: 2, paymentType: models.PaymentTypeFull, wantPaise: 7999900},
		{name: "initial payment is fixed deposit", packageID: 1, paymentType: models.PaymentTypeInitial, wantPaise: 1000000},
		{name: "initial deposit independent of package", packageID: 3, paymentType: models.PaymentTypeInitial, wantPaise: 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(mockGateway)
			gw.On("CreateOrder", mock.Anything, mock.MatchedBy(func(p *gateway.OrderParams) bool {
				return p.Amount == tt.wantPaise && p.Currency == "INR"
			})).Return(&gateway.Order{ID: "order_TEST", Amount: tt.wantPaise, Currency: "INR"}, nil)

			svc := newIntentService(gw)
			receipt, err := svc.CreateIntent(context.Background(), &models.CreateOrderRequest{
				PackageID:   tt.packageID,
				PaymentType: tt.paymentType,
			})
			require.NoError(t, err)

			assert.Equal(t, "order_TEST", receipt.OrderID)
			assert.Equal(t, tt.wantPaise, receipt.Amount)
			assert.Equal(t, "INR", receipt.Currency)
			gw.AssertExpectations(t)
		})
	}
}

func TestCreateIntentValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateOrderRequest
		wantErr error
	}{
		{
			name:    "unknown package",
			req:     &models.CreateOrderRequest{PackageID: 42, PaymentType: models.PaymentTypeFull},
			wantErr: catalog.ErrPackageNotFound,
		},
		{
			name:    "unknown payment type",
			req:     &models.CreateOrderRequest{PackageID: 1, PaymentType: "monthly"},
			wantErr: ErrInvalidPaymentType,
		},
		{
			name:    "empty payment type",
			req:     &models.CreateOrderRequest{PackageID: 1},
			wantErr: ErrInvalidPaymentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(mockGateway)
			svc := newIntentService(gw)

			_, err := svc.CreateIntent(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateIntentGatewayErrorPropagates(t *testing.T) {
	gw := new(mockGateway)
	gw.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, errors.New("razorpay API error: authentication failed"))

	svc := newIntentService(gw)
	_, err := svc.CreateIntent(context.Background(), &models.CreateOrderRequest{
		PackageID:   1,
		PaymentType: models.PaymentTypeFull,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestCreateIntentNotesAndReceipt(t *testing.T) {
	var captured *gateway.OrderParams
	gw := new(mockGateway)
	gw.On("CreateOrder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*gateway.OrderParams)
		}).
		Return(&gateway.Order{ID: "order_NOTES", Amount: 1000000, Currency: "INR"}, nil)

	svc := newIntentService(gw)
	_, err := svc.CreateIntent(context.Background(), &models.CreateOrderRequest{
		PackageID:    2,
		PaymentType:  models.PaymentTypeInitial,
		CustomerInfo: models.CustomerInfo{Name: "Ayesha"},
	})
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "Premium Package", captured.Notes["package_name"])
	assert.Equal(t, "Ayesha", captured.Notes["customer_name"])
	assert.Equal(t, "customer@example.com", captured.Notes["customer_email"], "absent email gets placeholder")
	assert.Equal(t, "9999999999", captured.Notes["customer_phone"], "absent phone gets placeholder")
	assert.Equal(t, "initial", captured.Notes["payment_type"])
	assert.True(t, strings.HasPrefix(captured.Receipt, "umrah_2_"))
}

func TestReceiptsAreUniquePerRequest(t *testing.T) {
	receipts := make(map[string]bool)
	gw := new(mockGateway)
	gw.On("CreateOrder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			receipts[args.Get(1).(*gateway.OrderParams).Receipt] = true
		}).
		Return(&gateway.Order{ID: "order_R", Amount: 1000000, Currency: "INR"}, nil)

	svc := newIntentService(gw)
	req := &models.CreateOrderRequest{PackageID: 1, PaymentType: models.PaymentTypeInitial}
	for i := 0; i < 20; i++ {
		_, err := svc.CreateIntent(context.Background(), req)
		require.NoError(t, err)
	}

	assert.Len(t, receipts, 20, "every request must get a distinct receipt")
}

func TestCreateUPIIntent(t *testing.T) {
	t.Run("rejects upi id without separator", func(t *testing.T) {
		gw := new(mockGateway)
		svc := newIntentService(gw)

		for _, upiID := range []string{"", "customerupi", "9999999999"} {
			_, err := svc.CreateUPIIntent(context.Background(), &models.CreateUPIOrderRequest{
				PackageID:   1,
				PaymentType: models.PaymentTypeFull,
				UPIID:       upiID,
			})
			require.ErrorIs(t, err, ErrInvalidUPIID)
		}
		gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("builds deep link from local amount", func(t *testing.T) {
		var captured *gateway.OrderParams
		gw := new(mockGateway)
		gw.On("CreateOrder", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*gateway.OrderParams)
			}).
			Return(&gateway.Order{ID: "order_UPI", Amount: 6999900, Currency: "INR"}, nil)

		svc := newIntentService(gw)
		receipt, err := svc.CreateUPIIntent(context.Background(), &models.CreateUPIOrderRequest{
			PackageID:   1,
			PaymentType: models.PaymentTypeFull,
			UPIID:       "customer@upi",
		})
		require.NoError(t, err)

		assert.Equal(t, "order_UPI", receipt.OrderID)
		assert.Equal(t, "customer@upi", receipt.UPIID)
		assert.Equal(t, "upi://pay?pa=customer@upi&pn=UmrahTours&am=69999&cu=INR&tn=UmrahPackagePayment", receipt.DeepLink)

		require.NotNil(t, captured)
		assert.True(t, strings.HasPrefix(captured.Receipt, "umrah_upi_1_"))
		assert.Equal(t, "customer@upi", captured.Notes["upi_id"])
		assert.Equal(t, "upi", captured.Notes["payment_method"])
	})
}
