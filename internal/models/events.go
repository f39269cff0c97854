package models

import "time"

const (
	EventTypeOrderCreated          = "order.created"
	EventTypePaymentRecorded       = "payment.recorded"
	EventTypeAdjustmentRecorded    = "adjustment.recorded"
	EventTypePolicyInstallmentPaid = "policy.installment_paid"
	EventTypePolicyInstallmentDue  = "policy.installment_due"
)

type OrderCreatedEvent struct {
	OrderID       string    `json:"orderId"`
	CustomerID    string    `json:"customerId"`
	DisplayID     string    `json:"displayId"`
	TotalValue    Decimal   `json:"totalValue"`
	OrderDate     string    `json:"orderDate"`
	Source        string    `json:"source"`
	CreditExceeds bool      `json:"creditExceeds"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentRecordedEvent struct {
	PaymentID  string    `json:"paymentId"`
	CustomerID string    `json:"customerId"`
	Amount     Decimal   `json:"amount"`
	PaidAt     string    `json:"paidAt"`
	Method     string    `json:"method"`
	Reference  string    `json:"reference,omitempty"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AdjustmentRecordedEvent struct {
	AdjustmentID string    `json:"adjustmentId"`
	CustomerID   string    `json:"customerId"`
	Amount       Decimal   `json:"amount"`
	Type         string    `json:"type"`
	AdjustedAt   string    `json:"adjustedAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PolicyInstallmentPaidEvent struct {
	PolicyID      string    `json:"policyId"`
	CustomerID    string    `json:"customerId"`
	PaymentID     string    `json:"paymentId"`
	PaidAnchor    string    `json:"paidAnchor"`
	NewAnchorDate string    `json:"newAnchorDate"`
	Amount        Decimal   `json:"amount"`
	PaidAt        time.Time `json:"paidAt"`
}

// PolicyDueReminder is published by the reminder job and also posted to the
// reminder gateway when that delivery is switched on.
type PolicyDueReminder struct {
	PolicyID          string  `json:"policyId"`
	CustomerID        string  `json:"customerId"`
	PolicyNumber      string  `json:"policyNumber"`
	Insurer           string  `json:"insurer"`
	DueDate           string  `json:"dueDate"`
	OverduePeriods    int     `json:"overduePeriods"`
	InstallmentAmount Decimal `json:"installmentAmount"`
	ReferenceDate     string  `json:"referenceDate"`
}

func NewPolicyDueReminder(d PolicyDue) PolicyDueReminder {
	return PolicyDueReminder{
		PolicyID:          d.Policy.ID,
		CustomerID:        d.Policy.CustomerID,
		PolicyNumber:      d.Policy.PolicyNumber,
		Insurer:           d.Policy.Insurer,
		DueDate:           FormatDate(d.NextDueDate),
		OverduePeriods:    d.OverduePeriods,
		InstallmentAmount: NewDecimalFromExternal(d.Policy.InstallmentAmount),
		ReferenceDate:     FormatDate(d.ReferenceDate),
	}
}

// StorefrontOrderEvent is the payload the storefront publishes for every checkout.
type StorefrontOrderEvent struct {
	EventID    string  `json:"eventId" validate:"required"`
	CustomerID string  `json:"customerId" validate:"required"`
	DisplayID  string  `json:"displayId" validate:"required,max=50"`
	TotalValue Decimal `json:"totalValue" validate:"decimalGreaterThan=0"`
	OrderDate  string  `json:"orderDate" validate:"omitempty,date"`
}

// ReminderPublishResult summarizes one run of the due reminder job.
type ReminderPublishResult struct {
	ReferenceDate    string
	Due              int
	Published        int
	Failed           int
	GatewayDelivered int
	GatewayFailed    int
}
