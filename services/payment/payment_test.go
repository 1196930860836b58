package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test-secret"

	valid := sign("order_123", "pay_456", secret)
	assert.True(t, verifySignature("order_123", "pay_456", valid, secret))

	// Tampered payment ID.
	assert.False(t, verifySignature("order_123", "pay_999", valid, secret))
	// Wrong secret.
	assert.False(t, verifySignature("order_123", "pay_456", sign("order_123", "pay_456", "other"), secret))
	// Garbage signature.
	assert.False(t, verifySignature("order_123", "pay_456", "deadbeef", secret))
	assert.False(t, verifySignature("order_123", "pay_456", "", secret))
}

func TestVerifyPaymentRequiresAllFields(t *testing.T) {
	svc := &DefaultPaymentService{}

	cases := []VerifyPaymentInput{
		{},
		{OrderID: "order_123", PaymentID: "pay_456"},
		{OrderID: "order_123", Signature: "sig"},
		{PaymentID: "pay_456", Signature: "sig"},
	}
	for _, input := range cases {
		_, err := svc.VerifyPayment(context.Background(), input)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}
