package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func rawAccounts(t *testing.T, accounts ...string) []json.RawMessage {
	t.Helper()
	raw := make([]json.RawMessage, len(accounts))
	for i, a := range accounts {
		raw[i] = json.RawMessage(a)
	}
	return raw
}

func TestNewSnapshotPartitionsByTypeTag(t *testing.T) {
	snap, err := NewSnapshot(rawAccounts(t,
		`{"id":"inv1","name":"Brokerage","type":"Investment","uninvested_amount":1000,"asset_distribution":[{"ticker":"VOO","quantity":2,"average_cost_basis":400}]}`,
		`{"id":"cc1","name":"Blue","type":"Credit Card","total_limit":5000,"current_limit":4000,"interest":22,"outstanding_debt":1000,"current_billing_cycle_transactions":[{"amount":-50,"category":"gas"}],"annual_fee":95}`,
		`{"id":"ch1","name":"Everyday","type":"Checking","current_amount":1200,"interest":0.1,"fee":{"no_minimum_balance_fee":0,"monthly_fee":5,"ATM_fee":2,"overdraft_fee":30},"current_billing_cycle_transactions":[]}`,
		`{"id":"sv1","name":"Rainy day","type":"Savings","current_amount":9000,"interest":4.2,"fee":{"no_minimum_balance_fee":0,"monthly_fee":0,"ATM_fee":0,"overdraft_fee":0},"current_billing_cycle_transactions":[]}`,
		`{"id":"ira1","name":"IRA","type":"Traditional IRA","uninvested_amount":50,"average_monthly_contribution":200,"asset_distribution":[]}`,
		`{"id":"l1","name":"Mortgage","type":"Loan","principal_left":200000,"interest_rate":5.5,"loan_term":"30 years","outstanding_balance":210000,"total_paid":90000,"payment_history":[],"loan_type":"mortgage","current_outstanding_fees":{"late_fee":0,"prepayment_penalty":0,"origination_fee":0,"other_fees":0},"other_payments":[]}`,
		`{"id":"p1","name":"Employer","type":"Payroll","annual_income":120000,"state":"CA"}`,
		`{"id":"o1","name":"Misc","type":"Other","total_income":10,"total_debt":0}`,
	))
	require.NoError(t, err)

	assert.Len(t, snap.Investment, 1)
	assert.Len(t, snap.CreditCards, 1)
	assert.Len(t, snap.Checking, 1)
	assert.Len(t, snap.Savings, 1)
	assert.Len(t, snap.TraditionalIRA, 1)
	assert.Len(t, snap.Loans, 1)
	assert.Len(t, snap.Payrolls, 1)
	assert.Len(t, snap.Other, 1)
	assert.Empty(t, snap.RothIRA)
	assert.Empty(t, snap.HSA)

	assert.Equal(t, "VOO", snap.Investment[0].AssetDistribution[0].Ticker)
	assert.Equal(t, 95.0, snap.CreditCards[0].AnnualFee)
	assert.Equal(t, 2.0, snap.Checking[0].Fee.ATMFee)
}

func TestNewSnapshotUnknownTagFailsWholeRequest(t *testing.T) {
	_, err := NewSnapshot(rawAccounts(t,
		`{"id":"o1","name":"Misc","type":"Other","total_income":10,"total_debt":0}`,
		`{"id":"x1","name":"Mystery","type":"Crypto Wallet"}`,
	))
	require.Error(t, err)

	var unknown *UnknownAccountTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Crypto Wallet", unknown.Tag)
	assert.Equal(t, 1, unknown.Index)
}

func TestNewSnapshotMalformedAccount(t *testing.T) {
	_, err := NewSnapshot(rawAccounts(t, `{"id":`))
	assert.Error(t, err)
}

func TestSnapshotLookups(t *testing.T) {
	snap, err := NewSnapshot(rawAccounts(t,
		`{"id":"inv1","name":"Brokerage","type":"Investment","uninvested_amount":1000,"asset_distribution":[]}`,
		`{"id":"cc1","name":"Blue","type":"Credit Card","total_limit":5000,"current_limit":4000,"interest":22,"outstanding_debt":1000,"current_billing_cycle_transactions":[],"annual_fee":0}`,
	))
	require.NoError(t, err)

	acc, err := snap.HoldingByID(domain.TagInvestment, "inv1")
	require.NoError(t, err)
	assert.Equal(t, "Brokerage", acc.Name)

	_, err = snap.HoldingByID(domain.TagInvestment, "missing")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.TagInvestment, notFound.Family)
	assert.Equal(t, "missing", notFound.ID)

	card, err := snap.CreditCardByID("cc1")
	require.NoError(t, err)
	assert.Equal(t, "Blue", card.Name)

	// Lookups never cross families.
	_, err = snap.HoldingByID(domain.TagRothIRA, "inv1")
	assert.ErrorAs(t, err, &notFound)
}

func TestSnapshotRefsPreserveOrder(t *testing.T) {
	snap, err := NewSnapshot(rawAccounts(t,
		`{"id":"ira2","name":"Second","type":"Roth IRA","uninvested_amount":0,"asset_distribution":[]}`,
		`{"id":"ira1","name":"First","type":"Roth IRA","uninvested_amount":0,"asset_distribution":[]}`,
	))
	require.NoError(t, err)

	refs := snap.HoldingRefs(domain.TagRothIRA)
	require.Len(t, refs, 2)
	assert.Equal(t, domain.AccountRef{ID: "ira2", Name: "Second"}, refs[0])
	assert.Equal(t, domain.AccountRef{ID: "ira1", Name: "First"}, refs[1])
}
