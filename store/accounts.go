// Package store builds the per-request view of a user's accounts. Every chat
// request carries the full account list in its body; the handler partitions it
// once into an immutable Snapshot and threads that snapshot through the tool
// registry, so concurrent requests never observe each other's data.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

// UnknownAccountTypeError is returned when an inbound account carries a type
// tag outside the twelve known families. Requests carrying one are rejected
// whole rather than silently dropping the account.
type UnknownAccountTypeError struct {
	Tag   string
	Index int
}

func (e *UnknownAccountTypeError) Error() string {
	return fmt.Sprintf("account at index %d has unknown type %q", e.Index, e.Tag)
}

// Snapshot is an immutable partition of one request's accounts. Slices keep
// the arrival order of the request body. Snapshots are never mutated after
// NewSnapshot returns, so they are safe to share across goroutines.
type Snapshot struct {
	Investment     []domain.HoldingAccount
	TraditionalIRA []domain.HoldingAccount
	RothIRA        []domain.HoldingAccount
	Retirement401K []domain.HoldingAccount
	Roth401K       []domain.HoldingAccount
	HSA            []domain.HoldingAccount
	CreditCards    []domain.CreditCard
	Checking       []domain.CheckingOrSavingsAccount
	Savings        []domain.CheckingOrSavingsAccount
	Loans          []domain.Loan
	Payrolls       []domain.Payroll
	Other          []domain.OtherAccount
}

// NewSnapshot partitions raw account objects by their type tag. The tag is
// read first so a malformed or unknown account fails the whole request with a
// typed error instead of landing in the wrong family.
func NewSnapshot(raw []json.RawMessage) (*Snapshot, error) {
	snap := &Snapshot{}
	for i, msg := range raw {
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &probe); err != nil {
			return nil, fmt.Errorf("account at index %d: %w", i, err)
		}

		var err error
		switch probe.Type {
		case domain.TagInvestment:
			err = appendAccount(msg, &snap.Investment)
		case domain.TagTraditionalIRA:
			err = appendAccount(msg, &snap.TraditionalIRA)
		case domain.TagRothIRA:
			err = appendAccount(msg, &snap.RothIRA)
		case domain.TagRetirement401K:
			err = appendAccount(msg, &snap.Retirement401K)
		case domain.TagRoth401K:
			err = appendAccount(msg, &snap.Roth401K)
		case domain.TagHSA:
			err = appendAccount(msg, &snap.HSA)
		case domain.TagCreditCard:
			err = appendAccount(msg, &snap.CreditCards)
		case domain.TagChecking:
			err = appendAccount(msg, &snap.Checking)
		case domain.TagSavings:
			err = appendAccount(msg, &snap.Savings)
		case domain.TagLoan:
			err = appendAccount(msg, &snap.Loans)
		case domain.TagPayroll:
			err = appendAccount(msg, &snap.Payrolls)
		case domain.TagOther:
			err = appendAccount(msg, &snap.Other)
		default:
			return nil, &UnknownAccountTypeError{Tag: probe.Type, Index: i}
		}
		if err != nil {
			return nil, fmt.Errorf("account at index %d (%s): %w", i, probe.Type, err)
		}
	}
	return snap, nil
}

func appendAccount[T any](msg json.RawMessage, dst *[]T) error {
	var acc T
	if err := json.Unmarshal(msg, &acc); err != nil {
		return err
	}
	*dst = append(*dst, acc)
	return nil
}

// Holdings returns the asset-bearing family named by tag, or false when the
// tag is not one of the six holding families.
func (s *Snapshot) Holdings(tag string) ([]domain.HoldingAccount, bool) {
	switch tag {
	case domain.TagInvestment:
		return s.Investment, true
	case domain.TagTraditionalIRA:
		return s.TraditionalIRA, true
	case domain.TagRothIRA:
		return s.RothIRA, true
	case domain.TagRetirement401K:
		return s.Retirement401K, true
	case domain.TagRoth401K:
		return s.Roth401K, true
	case domain.TagHSA:
		return s.HSA, true
	}
	return nil, false
}

// HoldingByID looks up a single asset-bearing account in one family.
func (s *Snapshot) HoldingByID(tag, id string) (domain.HoldingAccount, error) {
	accounts, ok := s.Holdings(tag)
	if ok {
		for _, acc := range accounts {
			if acc.ID == id {
				return acc, nil
			}
		}
	}
	return domain.HoldingAccount{}, &domain.NotFoundError{Family: tag, ID: id}
}

func (s *Snapshot) CreditCardByID(id string) (domain.CreditCard, error) {
	for _, c := range s.CreditCards {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.CreditCard{}, &domain.NotFoundError{Family: domain.TagCreditCard, ID: id}
}

func (s *Snapshot) BankAccountByID(tag, id string) (domain.CheckingOrSavingsAccount, error) {
	accounts := s.Checking
	if tag == domain.TagSavings {
		accounts = s.Savings
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.CheckingOrSavingsAccount{}, &domain.NotFoundError{Family: tag, ID: id}
}

func (s *Snapshot) LoanByID(id string) (domain.Loan, error) {
	for _, l := range s.Loans {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Loan{}, &domain.NotFoundError{Family: domain.TagLoan, ID: id}
}

func (s *Snapshot) PayrollByID(id string) (domain.Payroll, error) {
	for _, p := range s.Payrolls {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Payroll{}, &domain.NotFoundError{Family: domain.TagPayroll, ID: id}
}

func (s *Snapshot) OtherAccountByID(id string) (domain.OtherAccount, error) {
	for _, o := range s.Other {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.OtherAccount{}, &domain.NotFoundError{Family: domain.TagOther, ID: id}
}

// HoldingRefs lists id/name pairs for one asset-bearing family.
func (s *Snapshot) HoldingRefs(tag string) []domain.AccountRef {
	accounts, _ := s.Holdings(tag)
	refs := make([]domain.AccountRef, len(accounts))
	for i, a := range accounts {
		refs[i] = domain.AccountRef{ID: a.ID, Name: a.Name}
	}
	return refs
}

func (s *Snapshot) CreditCardRefs() []domain.AccountRef {
	refs := make([]domain.AccountRef, len(s.CreditCards))
	for i, c := range s.CreditCards {
		refs[i] = domain.AccountRef{ID: c.ID, Name: c.Name}
	}
	return refs
}

func (s *Snapshot) BankAccountRefs(tag string) []domain.AccountRef {
	accounts := s.Checking
	if tag == domain.TagSavings {
		accounts = s.Savings
	}
	refs := make([]domain.AccountRef, len(accounts))
	for i, a := range accounts {
		refs[i] = domain.AccountRef{ID: a.ID, Name: a.Name}
	}
	return refs
}

func (s *Snapshot) LoanRefs() []domain.AccountRef {
	refs := make([]domain.AccountRef, len(s.Loans))
	for i, l := range s.Loans {
		refs[i] = domain.AccountRef{ID: l.ID, Name: l.Name}
	}
	return refs
}

func (s *Snapshot) PayrollRefs() []domain.AccountRef {
	refs := make([]domain.AccountRef, len(s.Payrolls))
	for i, p := range s.Payrolls {
		refs[i] = domain.AccountRef{ID: p.ID, Name: p.Name}
	}
	return refs
}

func (s *Snapshot) OtherAccountRefs() []domain.AccountRef {
	refs := make([]domain.AccountRef, len(s.Other))
	for i, o := range s.Other {
		refs[i] = domain.AccountRef{ID: o.ID, Name: o.Name}
	}
	return refs
}
