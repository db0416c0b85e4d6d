package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thangamsteels/storefront/internal/cart"
	"github.com/thangamsteels/storefront/internal/events"
	"github.com/thangamsteels/storefront/internal/models"
	"github.com/thangamsteels/storefront/internal/pricing"
)

type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepConfirmation:
		return "confirmation"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrValidation = errors.New("validation")
	// ErrCartEmpty tells the transport layer to send the caller back to
	// the catalog. Raised on any flow access before confirmation.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrMissingInfo aborts order placement when shipping or payment
	// was never captured.
	ErrMissingInfo = errors.New("missing shipping or payment information")
	// ErrOnlineUnavailable blocks the online payment method, which is
	// selectable but intentionally unimplemented.
	ErrOnlineUnavailable = errors.New("online payment is not available")
	// ErrStepNotReachable rejects forward jumps and any navigation off
	// the confirmation step.
	ErrStepNotReachable = errors.New("step not reachable")
	ErrProcessing       = errors.New("order is already processing")
)

const deliveryLeadTime = 7 * 24 * time.Hour

// Flow is one session's progress through checkout. Orders live only
// here; leaving the flow discards them.
type Flow struct {
	Step     Step
	Shipping *models.ShippingInfo
	Payment  *models.PaymentInfo
	Order    *models.Order

	processing bool
}

// Manager drives the four-step checkout state machine per session:
// shipping, payment, review, confirmation. Strictly linear forward,
// backward only onto already completed steps.
type Manager struct {
	cart     *cart.Store
	producer *events.Producer
	log      *slog.Logger

	// processingDelay simulates order handling before confirmation.
	processingDelay time.Duration
	now             func() time.Time

	mu    sync.Mutex
	flows map[string]*Flow
}

func NewManager(c *cart.Store, producer *events.Producer, log *slog.Logger, processingDelay time.Duration) *Manager {
	return &Manager{
		cart:            c,
		producer:        producer,
		log:             log,
		processingDelay: processingDelay,
		now:             time.Now,
		flows:           make(map[string]*Flow),
	}
}

// State describes the flow to the transport layer.
type State struct {
	Step             Step          `json:"step"`
	StepName         string        `json:"step_name"`
	ShippingCaptured bool          `json:"shipping_captured"`
	PaymentCaptured  bool          `json:"payment_captured"`
	Order            *models.Order `json:"order,omitempty"`
}

func (m *Manager) flowLocked(sessionID string) *Flow {
	f, ok := m.flows[sessionID]
	if !ok {
		f = &Flow{Step: StepShipping}
		m.flows[sessionID] = f
	}
	return f
}

// guard re-checks the empty-cart redirect on every access, not just at
// entry: the cart may have emptied underneath the flow.
func (m *Manager) guard(ctx context.Context, sessionID string, f *Flow) error {
	if f.Step < StepConfirmation && m.cart.Count(ctx, sessionID) == 0 {
		return ErrCartEmpty
	}
	return nil
}

func (m *Manager) State(ctx context.Context, sessionID string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.flowLocked(sessionID)
	if err := m.guard(ctx, sessionID, f); err != nil {
		return State{}, err
	}
	return State{
		Step:             f.Step,
		StepName:         f.Step.String(),
		ShippingCaptured: f.Shipping != nil,
		PaymentCaptured:  f.Payment != nil,
		Order:            f.Order,
	}, nil
}

func validateShipping(info models.ShippingInfo) error {
	required := []struct{ name, value string }{
		{"first_name", info.FirstName},
		{"last_name", info.LastName},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address", info.Address},
		{"city", info.City},
		{"state", info.State},
		{"pincode", info.Pincode},
		{"country", info.Country},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// SubmitShipping captures the delivery details and advances to payment.
func (m *Manager) SubmitShipping(ctx context.Context, sessionID string, info models.ShippingInfo) error {
	if err := validateShipping(info); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.flowLocked(sessionID)
	if err := m.guard(ctx, sessionID, f); err != nil {
		return err
	}
	if f.Step == StepConfirmation {
		return fmt.Errorf("%w: checkout already completed", ErrStepNotReachable)
	}

	f.Shipping = &info
	f.Step = StepPayment
	return nil
}

// SubmitPayment captures the payment method and advances to review.
// Cash on delivery is the only method that can go through.
func (m *Manager) SubmitPayment(ctx context.Context, sessionID string, info models.PaymentInfo) error {
	switch info.Method {
	case models.PaymentMethodCOD:
	case models.PaymentMethodOnline:
		return ErrOnlineUnavailable
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, info.Method)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.flowLocked(sessionID)
	if err := m.guard(ctx, sessionID, f); err != nil {
		return err
	}
	if f.Shipping == nil || f.Step < StepPayment {
		return fmt.Errorf("%w: shipping not captured", ErrStepNotReachable)
	}
	if f.Step == StepConfirmation {
		return fmt.Errorf("%w: checkout already completed", ErrStepNotReachable)
	}

	f.Payment = &info
	f.Step = StepReview
	return nil
}

// PlaceOrder runs the simulated processing wait, synthesizes the order
// from the current cart, clears the cart and moves the flow to the
// terminal confirmation step.
func (m *Manager) PlaceOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	m.mu.Lock()
	f := m.flowLocked(sessionID)
	if err := m.guard(ctx, sessionID, f); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	if f.Step == StepConfirmation {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: checkout already completed", ErrStepNotReachable)
	}
	if f.Shipping == nil || f.Payment == nil {
		m.mu.Unlock()
		return nil, ErrMissingInfo
	}
	if f.processing {
		m.mu.Unlock()
		return nil, ErrProcessing
	}
	f.processing = true
	shipping := *f.Shipping
	payment := *f.Payment
	m.mu.Unlock()

	// Simulated processing latency. Nothing external is held, so a
	// caller navigating away just abandons the wait.
	if m.processingDelay > 0 {
		select {
		case <-time.After(m.processingDelay):
		case <-ctx.Done():
			m.mu.Lock()
			f.processing = false
			m.mu.Unlock()
			return nil, ctx.Err()
		}
	}

	items := m.cart.Items(ctx, sessionID)
	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	quote := pricing.Calculate(subtotal)

	now := m.now()
	order := &models.Order{
		OrderID:           fmt.Sprintf("TS%d", now.UnixMilli()),
		Items:             items,
		Shipping:          shipping,
		Payment:           payment,
		Subtotal:          quote.Subtotal,
		ShippingCost:      quote.ShippingCost,
		Tax:               quote.Tax,
		Total:             quote.Total,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryLeadTime).Format("Monday, 2 January 2006"),
	}

	m.cart.Clear(ctx, sessionID)

	m.mu.Lock()
	f.Order = order
	f.Step = StepConfirmation
	f.processing = false
	m.mu.Unlock()

	m.producer.Publish(ctx, events.TopicOrder, sessionID, map[string]any{
		"type":     "order_created",
		"order_id": order.OrderID,
		"total":    order.Total,
		"items":    len(order.Items),
	})
	m.log.Info("order placed", "session", sessionID, "order_id", order.OrderID, "total", order.Total)

	return order, nil
}

// SelectStep navigates backward onto an already completed step. Forward
// jumps and leaving the confirmation step are rejected.
func (m *Manager) SelectStep(ctx context.Context, sessionID string, step Step) error {
	if step < StepShipping || step > StepConfirmation {
		return fmt.Errorf("%w: no such step %d", ErrValidation, int(step))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.flowLocked(sessionID)
	if err := m.guard(ctx, sessionID, f); err != nil {
		return err
	}
	if f.Step == StepConfirmation {
		return fmt.Errorf("%w: checkout already completed", ErrStepNotReachable)
	}
	if step >= f.Step {
		return fmt.Errorf("%w: cannot jump forward to %s", ErrStepNotReachable, step)
	}
	f.Step = step
	return nil
}

// Reset drops the session's flow state, order included. Called when the
// session leaves checkout for the catalog.
func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, sessionID)
}
