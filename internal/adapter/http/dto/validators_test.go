package dto

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	v.SetTagName("binding")
	return v
}

func TestMoneyValidator(t *testing.T) {
	v := newValidator()
	tests := []struct {
		amount string
		valid  bool
	}{
		{"10", true},
		{"10.5", true},
		{"0.01", true},
		{"10000000.99", true},
		{"0", false},
		{"-5", false},
		{"1.001", false},
		{"1e-3", false},
		{"abc", false},
	}
	for _, tt := range tests {
		err := v.Struct(FundCardRequest{Amount: json.Number(tt.amount)})
		assert.Equal(t, tt.valid, err == nil, tt.amount)
	}
}

func TestCurrencyValidator(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(CreateWalletRequest{Currency: "ngn"}))
	assert.NoError(t, v.Struct(CreateWalletRequest{Currency: "USD"}))
	assert.Error(t, v.Struct(CreateWalletRequest{Currency: "JPY"}))
	assert.Error(t, v.Struct(CreateWalletRequest{Currency: ""}))
}

func TestSafeIDValidator(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(ExchangeRequest{Reference: "fx_7b1c-ab.9"}))
	assert.Error(t, v.Struct(ExchangeRequest{Reference: "fx 7b1c"}))
	assert.Error(t, v.Struct(ExchangeRequest{Reference: "../etc"}))
}

func TestRequestCardValidation(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(RequestCardRequest{Currency: "USD", Brand: "visa", Pin: "1234"}))
	assert.Error(t, v.Struct(RequestCardRequest{Currency: "USD", Brand: "amex", Pin: "1234"}))
	assert.Error(t, v.Struct(RequestCardRequest{Currency: "USD", Brand: "VISA", Pin: "12a4"}))
}

func TestParseMoney(t *testing.T) {
	amount, err := ParseMoney(" 125.50 ")
	require.NoError(t, err)
	assert.Equal(t, "125.5", amount.String())

	_, err = ParseMoney("1.234")
	assert.Error(t, err)
}

func TestSanitizeStruct(t *testing.T) {
	req := RequestCardRequest{Currency: " usd ", Brand: "<b>visa</b>"}
	SanitizeStruct(&req)
	assert.Equal(t, "usd", req.Currency)
	assert.Equal(t, "&lt;b&gt;visa&lt;/b&gt;", req.Brand)

	// json.Number fields are left alone.
	fund := FundCardRequest{Amount: " 5 "}
	SanitizeStruct(&fund)
	assert.Equal(t, json.Number(" 5 "), fund.Amount)

	SanitizeStruct(req) // non-pointer is a no-op
}
