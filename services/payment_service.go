package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/HarshCode115/AapdaRakshak/models"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderFetcher looks an order up at the payment gateway. The amount is in
// minor currency units (paise); the receipt encodes the fund id.
type OrderFetcher interface {
	FetchOrder(ctx context.Context, orderID string) (amountMinor int64, receipt string, err error)
}

// RazorpayOrders is the production OrderFetcher.
type RazorpayOrders struct {
	client *razorpay.Client
}

func NewRazorpayOrders() *RazorpayOrders {
	return &RazorpayOrders{
		client: razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET")),
	}
}

func (r *RazorpayOrders) FetchOrder(ctx context.Context, orderID string) (int64, string, error) {
	body, err := r.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	amount, ok := body["amount"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("order %s has no numeric amount", orderID)
	}
	receipt, _ := body["receipt"].(string)

	return int64(amount), receipt, nil
}

// PaymentService verifies Razorpay payment captures and credits the
// targeted relief fund.
type PaymentService struct {
	db     *gorm.DB
	orders OrderFetcher
	secret string
	log    *logrus.Logger
}

func NewPaymentService(db *gorm.DB, orders OrderFetcher, secret string, log *logrus.Logger) *PaymentService {
	return &PaymentService{db: db, orders: orders, secret: secret, log: log}
}

// Verify checks the gateway signature before anything else touches the
// fund. On a valid capture it credits the fund by the order amount
// converted to rupees and returns the applied amount.
func (s *PaymentService) Verify(ctx context.Context, orderID, paymentID, signature string) (float64, error) {
	log := s.log.WithFields(logrus.Fields{
		"service":  "payment",
		"order_id": orderID,
	})

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		log.Warn("Payment signature mismatch")
		return 0, ErrSignatureMismatch
	}

	amountMinor, receipt, err := s.orders.FetchOrder(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("payment verification failed: %w", err)
	}

	fundID, err := strconv.ParseUint(receipt, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("order %s has malformed receipt %q", orderID, receipt)
	}

	amount := float64(amountMinor) / 100

	var fund models.Fund
	if err := s.db.WithContext(ctx).First(&fund, uint(fundID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrFundNotFound
		}
		return 0, fmt.Errorf("could not load fund: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&models.Fund{}).
		Where("id = ?", fund.ID).
		Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error; err != nil {
		return 0, fmt.Errorf("could not credit fund: %w", err)
	}

	log.WithFields(logrus.Fields{"fund_id": fund.ID, "amount": amount}).Info("Payment verified and fund credited")
	return amount, nil
}

func (s *PaymentService) ListFunds(ctx context.Context) ([]models.Fund, error) {
	var funds []models.Fund
	if err := s.db.WithContext(ctx).Find(&funds).Error; err != nil {
		return nil, fmt.Errorf("could not list funds: %w", err)
	}
	return funds, nil
}
