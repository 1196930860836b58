package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"medicore/config"
	appointmentRepo "medicore/database/repository/appointment"
	billingRepo "medicore/database/repository/billing"
	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// PaymentContext is what the payment page needs to render and start checkout.
type PaymentContext struct {
	Appointment *models.Appointment `json:"appointment"`
	DoctorName  string              `json:"doctorName"`
	Specialty   string              `json:"specialty"`
	KeyID       string              `json:"keyId"`
}

// Order is the gateway order handed back to the client for checkout.
type Order struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"keyId"`
}

// VerifyPaymentInput carries the gateway callback fields.
type VerifyPaymentInput struct {
	AppointmentID string `json:"appointmentId"`
	OrderID       string `json:"razorpay_order_id"`
	PaymentID     string `json:"razorpay_payment_id"`
	Signature     string `json:"razorpay_signature"`
}

// PaymentService drives consultation-fee collection through Razorpay.
type PaymentService interface {
	GetPaymentContext(ctx context.Context, appointmentID string) (*PaymentContext, error)
	CreateOrder(ctx context.Context, appointmentID string) (*Order, error)
	VerifyPayment(ctx context.Context, input VerifyPaymentInput) (*models.Appointment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Billings     billingRepo.BillingRepository
	Client       *razorpay.Client
	KeyID        string
	KeySecret    string
}

// NewDefaultPaymentService wires a payment service against the configured
// Razorpay account.
func NewDefaultPaymentService(appointments appointmentRepo.AppointmentRepository, doctors doctorRepo.DoctorRepository, billings billingRepo.BillingRepository) *DefaultPaymentService {
	keyID := config.AppConfig.RazorpayKeyID
	keySecret := config.AppConfig.RazorpayKeySecret
	return &DefaultPaymentService{
		Appointments: appointments,
		Doctors:      doctors,
		Billings:     billings,
		Client:       razorpay.NewClient(keyID, keySecret),
		KeyID:        keyID,
		KeySecret:    keySecret,
	}
}

// GetPaymentContext loads an appointment with the fields the checkout page needs.
func (s *DefaultPaymentService) GetPaymentContext(ctx context.Context, appointmentID string) (*PaymentContext, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	doc, err := s.Doctors.GetByID(appt.DoctorID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDoctorNotFound
	}

	return &PaymentContext{
		Appointment: appt,
		DoctorName:  doc.Name,
		Specialty:   doc.Specialty,
		KeyID:       s.KeyID,
	}, nil
}

// CreateOrder opens a Razorpay order for the appointment's consultation fee
// and records the order ID on the appointment.
func (s *DefaultPaymentService) CreateOrder(ctx context.Context, appointmentID string) (*Order, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	if appt.PaymentStatus == models.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	fee := appt.Fee
	if fee <= 0 {
		doc, err := s.Doctors.GetByID(appt.DoctorID)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, ErrDoctorNotFound
		}
		fee = doc.Fee
		if fee <= 0 {
			fee = models.DefaultConsultationFee
		}
	}

	// Razorpay amounts are in paise.
	data := map[string]interface{}{
		"amount":   int64(fee * 100),
		"currency": "INR",
		"receipt":  "rcpt_" + appt.ID,
	}
	body, err := s.Client.Order.Create(data, nil)
	if err != nil {
		utils.GetLogger().Error("razorpay order creation failed", zap.String("appointmentID", appt.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}
	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("payment gateway returned no order ID")
	}

	if err := s.Appointments.SetPaymentOrder(ctx, appt.ID, orderID, fee); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment order created",
		zap.String("appointmentID", appt.ID),
		zap.String("orderID", orderID),
		zap.Float64("amount", fee),
	)
	return &Order{OrderID: orderID, Amount: fee, Currency: "INR", KeyID: s.KeyID}, nil
}

// VerifyPayment checks the gateway signature, marks the appointment paid, and
// writes the billing record.
func (s *DefaultPaymentService) VerifyPayment(ctx context.Context, input VerifyPaymentInput) (*models.Appointment, error) {
	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return nil, ErrMissingFields
	}

	appt, err := s.Appointments.GetByID(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	if appt.RazorpayOrderID != input.OrderID {
		return nil, ErrOrderMismatch
	}

	if !verifySignature(input.OrderID, input.PaymentID, input.Signature, s.KeySecret) {
		utils.GetLogger().Warn("payment signature rejected",
			zap.String("appointmentID", appt.ID),
			zap.String("orderID", input.OrderID),
		)
		return nil, ErrInvalidSignature
	}

	if err := s.Appointments.MarkPaid(ctx, appt.ID, input.PaymentID); err != nil {
		return nil, err
	}

	bill := &models.Billing{
		ID:            uuid.New().String(),
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Amount:        appt.Fee,
		BillingDate:   time.Now(),
		PaymentStatus: models.PaymentPaid,
		Details:       fmt.Sprintf("Consultation fee for appointment on %s at %s", appt.Date, appt.Time),
	}
	if err := s.Billings.Create(ctx, bill); err != nil {
		// The payment itself went through; a failed billing write must not
		// surface as a payment failure.
		utils.GetLogger().Error("failed to write billing record",
			zap.String("appointmentID", appt.ID),
			zap.Error(err),
		)
	}

	utils.GetLogger().Info("payment verified",
		zap.String("appointmentID", appt.ID),
		zap.String("paymentID", input.PaymentID),
	)

	appt.RazorpayPaymentID = input.PaymentID
	appt.PaymentStatus = models.PaymentPaid
	return appt, nil
}

// verifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" with the
// key secret and compares it to the gateway-supplied signature.
func verifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
