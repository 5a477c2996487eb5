package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want Currency
		ok   bool
	}{
		{"USD", CurrencyUSD, true},
		{" ngn ", CurrencyNGN, true},
		{"ghs", CurrencyGHS, true},
		{"KES", CurrencyKES, true},
		{"EUR", Currency("EUR"), false},
		{"", Currency(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCurrency(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDefaultCurrencies_AreSupported(t *testing.T) {
	for _, c := range DefaultCurrencies {
		assert.True(t, c.IsSupported(), c)
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    int64
		wantErr bool
	}{
		{"whole", "100", 10000, false},
		{"two places", "12.34", 1234, false},
		{"one place", "0.5", 50, false},
		{"zero", "0", 0, false},
		{"trailing zeros", "1.2300", 123, false},
		{"sub-minor precision", "0.001", 0, true},
		{"three places", "10.125", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinorUnits(d(tt.amount))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinorUnits_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.01", "1", "99.99", "125989.85", "1000000"} {
		minor, err := ToMinorUnits(d(s))
		require.NoError(t, err)
		assert.True(t, d(s).Equal(FromMinorUnits(minor)), s)
	}
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "10.12", RoundMoney(d("10.129")).String())
	assert.Equal(t, "10.13", RoundMoneyUp(d("10.121")).String())
	assert.Equal(t, "10.12", RoundMoneyUp(d("10.12")).String())
}

func TestWallet_HasSufficient(t *testing.T) {
	w := &Wallet{Balance: d("50.00")}
	assert.True(t, w.HasSufficient(d("50")))
	assert.True(t, w.HasSufficient(d("49.99")))
	assert.False(t, w.HasSufficient(d("50.01")))
}

func TestQuoteCacheKey(t *testing.T) {
	assert.Equal(t, "fx_ref-123", QuoteCacheKey("ref-123"))
}

func TestEffectiveRate(t *testing.T) {
	// 1500 - 0.1*1500
	assert.True(t, d("1350").Equal(EffectiveRate(d("1500"), d("0.1"))))
	assert.True(t, d("0.00066").Equal(EffectiveRate(d("0.00066"), decimal.Zero)))
}

func TestQuote_JSONKeepsExactAmounts(t *testing.T) {
	q := Quote{
		Reference:      "ref",
		UserID:         uuid.New(),
		SourceCurrency: CurrencyUSD,
		TargetCurrency: CurrencyNGN,
		SourceAmount:   d("10.10"),
		TargetAmount:   d("13635.00"),
		ExchangeRate:   d("1350.0000001"),
	}
	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var back Quote
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, q.ExchangeRate.Equal(back.ExchangeRate))
	assert.True(t, q.SourceAmount.Equal(back.SourceAmount))
	assert.Equal(t, q.UserID, back.UserID)
}

func TestDeposit_IsCompleted(t *testing.T) {
	assert.False(t, (&Deposit{Status: DepositStatusPending}).IsCompleted())
	assert.True(t, (&Deposit{Status: DepositStatusCompleted}).IsCompleted())
}

func TestVirtualCardTransaction_IsTerminal(t *testing.T) {
	tests := []struct {
		status CardTransactionStatus
		want   bool
	}{
		{CardTransactionStatusPending, false},
		{CardTransactionStatusCompleted, true},
		{CardTransactionStatusFailed, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, (&VirtualCardTransaction{Status: tt.status}).IsTerminal())
		})
	}
}

func TestJournalEntry_FromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := &Quote{
		Reference: "q-1", UserID: uuid.New(),
		SourceCurrency: CurrencyUSD, TargetCurrency: CurrencyNGN,
		SourceAmount: d("10"), TargetAmount: d("13500"), ExchangeRate: d("1350"),
	}
	src := &Wallet{ID: uuid.New()}
	dst := &Wallet{ID: uuid.New()}

	j := NewJournalEntry(q, src, dst, now)
	assert.Equal(t, JournalStatusInitiated, j.Status)
	assert.Equal(t, src.ID, j.SourceWalletID)
	assert.Equal(t, dst.ID, j.TargetWalletID)

	ex := j.Exchange(now)
	assert.Equal(t, "q-1", ex.Reference)
	assert.Equal(t, ExchangeStatusCompleted, ex.Status)
	assert.True(t, d("13500").Equal(ex.TargetAmount))
	assert.Equal(t, q.UserID, ex.UserID)
}

func TestNewLedgerEvent_DeterministicID(t *testing.T) {
	user := uuid.New()
	a := NewLedgerEvent(EventDepositCompleted, "dep-1", user, nil, time.Now())
	b := NewLedgerEvent(EventDepositCompleted, "dep-1", user, nil, time.Now().Add(time.Hour))
	c := NewLedgerEvent(EventCardFunded, "dep-1", user, nil, time.Now())

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestWebhookEvent(t *testing.T) {
	var charge WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(`{"event":"charge.success","data":{"reference":"dep-9","status":"success"}}`), &charge))
	assert.False(t, charge.IsCardEvent())
	assert.Equal(t, "dep-9", charge.DataReference())

	var card WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(`{"event":"issuing.created.failed","reference":"card-1"}`), &card))
	assert.True(t, card.IsCardEvent())
	assert.Equal(t, "card-1", card.Reference)
	assert.Empty(t, card.DataReference())
}
