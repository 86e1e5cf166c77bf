package billing

import (
	"intake-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBreakdown_CashUnderpayment(t *testing.T) {
	breakdown := ComputeBreakdown(constvars.PaymentMethodCash, 300, 0, 500)

	assert.Equal(t, 200.0, breakdown.Discount)
	assert.Equal(t, 100.0, breakdown.FinalAmount)
}

func TestComputeBreakdown_Overpayment(t *testing.T) {
	breakdown := ComputeBreakdown(constvars.PaymentMethodCash, 600, 0, 500)

	assert.Equal(t, 0.0, breakdown.Discount)
	assert.Equal(t, 600.0, breakdown.FinalAmount)
}

func TestComputeBreakdown_ExactPayment(t *testing.T) {
	breakdown := ComputeBreakdown(constvars.PaymentMethodOnline, 0, 500, 500)

	assert.Equal(t, 0.0, breakdown.Discount)
	assert.Equal(t, 500.0, breakdown.FinalAmount)
}

func TestComputeBreakdown_MixedSplit(t *testing.T) {
	breakdown := ComputeBreakdown(constvars.PaymentMethodMixed, 200, 200, 500)

	assert.Equal(t, 200.0, breakdown.CashAmount)
	assert.Equal(t, 200.0, breakdown.OnlineAmount)
	assert.Equal(t, 100.0, breakdown.Discount)
	assert.Equal(t, 300.0, breakdown.FinalAmount)
}

func TestComputeBreakdown_MethodZeroesOtherChannel(t *testing.T) {
	t.Run("cash method drops online amount", func(t *testing.T) {
		breakdown := ComputeBreakdown(constvars.PaymentMethodCash, 300, 150, 500)

		assert.Equal(t, 300.0, breakdown.CashAmount)
		assert.Equal(t, 0.0, breakdown.OnlineAmount)
	})

	t.Run("online method drops cash amount", func(t *testing.T) {
		breakdown := ComputeBreakdown(constvars.PaymentMethodOnline, 300, 150, 500)

		assert.Equal(t, 0.0, breakdown.CashAmount)
		assert.Equal(t, 150.0, breakdown.OnlineAmount)
	})
}

func TestComputeBreakdown_ZeroPaymentFullDiscount(t *testing.T) {
	breakdown := ComputeBreakdown(constvars.PaymentMethodCash, 0, 0, 500)

	assert.Equal(t, 500.0, breakdown.Discount)
	assert.Equal(t, -500.0, breakdown.FinalAmount)
}

func TestComputeBreakdown_FinalAmountIdentity(t *testing.T) {
	cases := []struct {
		name       string
		method     string
		cash       float64
		online     float64
		baseCharge float64
	}{
		{"underpaid cash", constvars.PaymentMethodCash, 300, 0, 500},
		{"overpaid online", constvars.PaymentMethodOnline, 0, 900, 500},
		{"mixed exact", constvars.PaymentMethodMixed, 250, 250, 500},
		{"mixed underpaid", constvars.PaymentMethodMixed, 100, 50, 500},
		{"zero everything", constvars.PaymentMethodCash, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown := ComputeBreakdown(tc.method, tc.cash, tc.online, tc.baseCharge)

			assert.Equal(t, breakdown.CashAmount+breakdown.OnlineAmount-breakdown.Discount, breakdown.FinalAmount)
			assert.GreaterOrEqual(t, breakdown.Discount, 0.0)
		})
	}
}
