package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"testing"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test_key_secret"

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type fakeOrders struct {
	amountMinor int64
	receipt     string
	err         error
}

func (f *fakeOrders) FetchOrder(ctx context.Context, orderID string) (int64, string, error) {
	if f.err != nil {
		return 0, "", f.err
	}
	return f.amountMinor, f.receipt, nil
}

func newPaymentFixture(t *testing.T, orders OrderFetcher) (*PaymentService, *gorm.DB, *models.Fund) {
	db := newTestDB(t)
	fund := &models.Fund{Name: "Flood Relief", TargetAmount: 100000, CurrentAmount: 1000}
	require.NoError(t, db.Create(fund).Error)
	return NewPaymentService(db, orders, testSecret, quietLogger()), db, fund
}

func fundAmount(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var fund models.Fund
	require.NoError(t, db.First(&fund, id).Error)
	return fund.CurrentAmount
}

func TestVerifyPayment_ValidSignatureCreditsFund(t *testing.T) {
	svc, db, fund := newPaymentFixture(t, &fakeOrders{
		amountMinor: 50000, // paise
		receipt:     strconv.FormatUint(uint64(1), 10),
	})

	amount, err := svc.Verify(context.Background(), "order_1", "pay_1", signPayment("order_1", "pay_1"))
	require.NoError(t, err)
	assert.Equal(t, 500.0, amount)
	assert.Equal(t, 1500.0, fundAmount(t, db, fund.ID))
}

func TestVerifyPayment_TamperedSignatureNeverMutatesFund(t *testing.T) {
	svc, db, fund := newPaymentFixture(t, &fakeOrders{amountMinor: 50000, receipt: "1"})

	_, err := svc.Verify(context.Background(), "order_1", "pay_1", "deadbeef")
	assert.ErrorIs(t, err, ErrSignatureMismatch)
	assert.Equal(t, 1000.0, fundAmount(t, db, fund.ID))
}

func TestVerifyPayment_GatewayFailureNoMutation(t *testing.T) {
	svc, db, fund := newPaymentFixture(t, &fakeOrders{err: errors.New("gateway timeout")})

	_, err := svc.Verify(context.Background(), "order_1", "pay_1", signPayment("order_1", "pay_1"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSignatureMismatch)
	assert.Equal(t, 1000.0, fundAmount(t, db, fund.ID))
}

func TestVerifyPayment_UnknownFund(t *testing.T) {
	svc, db, fund := newPaymentFixture(t, &fakeOrders{amountMinor: 50000, receipt: "999"})

	_, err := svc.Verify(context.Background(), "order_1", "pay_1", signPayment("order_1", "pay_1"))
	assert.ErrorIs(t, err, ErrFundNotFound)
	assert.Equal(t, 1000.0, fundAmount(t, db, fund.ID))
}

func TestVerifyPayment_MalformedReceipt(t *testing.T) {
	svc, db, fund := newPaymentFixture(t, &fakeOrders{amountMinor: 50000, receipt: "not-a-fund"})

	_, err := svc.Verify(context.Background(), "order_1", "pay_1", signPayment("order_1", "pay_1"))
	assert.Error(t, err)
	assert.Equal(t, 1000.0, fundAmount(t, db, fund.ID))
}
