package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// mockTx implements pgx.Tx for gomock-based tests.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// memLedger is an in-memory ledger store. Writes made through a memTx are
// undone when the transaction rolls back without committing, so invariant
// tests see the same all-or-nothing applies as PostgreSQL gives.
type memLedger struct {
	mu        sync.Mutex
	wallets   map[uuid.UUID]*domain.Wallet
	exchanges map[string]*domain.ExchangeTransaction
	deposits  map[string]*domain.Deposit
	holders   map[uuid.UUID]*domain.CardHolder
	requests  map[string]*domain.CardRequest
	cards     map[uuid.UUID]*domain.VirtualCard
	cardTxns  map[string]*domain.VirtualCardTransaction
	journal   map[uuid.UUID]*domain.JournalEntry
	margin    *decimal.Decimal
	fees      map[string]CardFee

	// failExchangeCreate makes the next exchange insert fail.
	failExchangeCreate error
}

func newMemLedger() *memLedger {
	return &memLedger{
		wallets:   make(map[uuid.UUID]*domain.Wallet),
		exchanges: make(map[string]*domain.ExchangeTransaction),
		deposits:  make(map[string]*domain.Deposit),
		holders:   make(map[uuid.UUID]*domain.CardHolder),
		requests:  make(map[string]*domain.CardRequest),
		cards:     make(map[uuid.UUID]*domain.VirtualCard),
		cardTxns:  make(map[string]*domain.VirtualCardTransaction),
		journal:   make(map[uuid.UUID]*domain.JournalEntry),
		fees:      make(map[string]CardFee),
	}
}

func (l *memLedger) addWallet(userID uuid.UUID, currency domain.Currency, balance string) *domain.Wallet {
	l.mu.Lock()
	defer l.mu.Unlock()
	w := &domain.Wallet{ID: uuid.New(), UserID: userID, Currency: currency, Balance: dec(balance)}
	l.wallets[w.ID] = w
	cp := *w
	return &cp
}

func (l *memLedger) balance(walletID uuid.UUID) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.wallets[walletID].Balance
}

func (l *memLedger) exchangeCount(reference string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.exchanges[reference]; ok {
		return 1
	}
	return 0
}

func (l *memLedger) journalByReference(reference string) *domain.JournalEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, j := range l.journal {
		if j.Reference == reference {
			cp := *j
			return &cp
		}
	}
	return nil
}

// record registers undo on tx. Must be called with l.mu held.
func (l *memLedger) record(tx pgx.Tx, undo func()) {
	if mt, ok := tx.(*memTx); ok && mt != nil {
		mt.undo = append(mt.undo, undo)
	}
}

// --- transactor ---

type memTx struct {
	pgx.Tx
	ledger *memLedger
	undo   []func()
	done   bool
}

func (t *memTx) Commit(_ context.Context) error {
	t.done = true
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	return nil
}

type memTransactor struct{ ledger *memLedger }

func (m memTransactor) Begin(_ context.Context) (pgx.Tx, error) {
	return &memTx{ledger: m.ledger}, nil
}

// --- wallets ---

type memWalletRepo struct{ *memLedger }

func (r memWalletRepo) Create(_ context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wallets {
		if existing.UserID == w.UserID && existing.Currency == w.Currency {
			return ports.ErrDuplicate
		}
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r memWalletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r memWalletRepo) GetByUserAndCurrency(_ context.Context, userID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.Currency == currency {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memWalletRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r memWalletRepo) IncrementBalance(_ context.Context, tx pgx.Tx, walletID uuid.UUID, delta decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return false, nil
	}
	next := w.Balance.Add(delta)
	if next.IsNegative() {
		return false, nil
	}
	prev := w.Balance
	w.Balance = next
	r.record(tx, func() { w.Balance = prev })
	return true, nil
}

// --- exchanges ---

type memExchangeRepo struct{ *memLedger }

func (r memExchangeRepo) Create(_ context.Context, tx pgx.Tx, ex *domain.ExchangeTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failExchangeCreate; err != nil {
		r.failExchangeCreate = nil
		return err
	}
	if _, ok := r.exchanges[ex.Reference]; ok {
		return ports.ErrDuplicate
	}
	cp := *ex
	r.exchanges[ex.Reference] = &cp
	r.record(tx, func() { delete(r.exchanges, ex.Reference) })
	return nil
}

func (r memExchangeRepo) GetByReference(_ context.Context, reference string) (*domain.ExchangeTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.exchanges[reference]
	if !ok {
		return nil, nil
	}
	cp := *ex
	return &cp, nil
}

func (r memExchangeRepo) ListByUser(_ context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.ExchangeTransaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.ExchangeTransaction
	for _, ex := range r.exchanges {
		if ex.UserID == userID {
			all = append(all, *ex)
		}
	}
	return paginate(all, page), int64(len(all)), nil
}

// --- deposits ---

type memDepositRepo struct{ *memLedger }

func (r memDepositRepo) Create(_ context.Context, d *domain.Deposit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.deposits[d.Reference]; ok {
		return ports.ErrDuplicate
	}
	cp := *d
	r.deposits[d.Reference] = &cp
	return nil
}

func (r memDepositRepo) GetByReference(_ context.Context, reference string) (*domain.Deposit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deposits[reference]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r memDepositRepo) MarkCompleted(_ context.Context, tx pgx.Tx, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.deposits {
		if d.ID != id {
			continue
		}
		if d.Status != domain.DepositStatusPending {
			return false, nil
		}
		d.Status = domain.DepositStatusCompleted
		r.record(tx, func() { d.Status = domain.DepositStatusPending })
		return true, nil
	}
	return false, nil
}

func (r memDepositRepo) ListByUser(_ context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.Deposit, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.Deposit
	for _, d := range r.deposits {
		if d.UserID == userID {
			all = append(all, *d)
		}
	}
	return paginate(all, page), int64(len(all)), nil
}

// --- cards ---

type memCardRepo struct{ *memLedger }

func (r memCardRepo) GetHolder(_ context.Context, userID uuid.UUID) (*domain.CardHolder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.holders[userID]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r memCardRepo) CreateRequest(_ context.Context, tx pgx.Tx, req *domain.CardRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.CardReference]; ok {
		return ports.ErrDuplicate
	}
	cp := *req
	r.requests[req.CardReference] = &cp
	r.record(tx, func() { delete(r.requests, req.CardReference) })
	return nil
}

func (r memCardRepo) GetRequestByReference(_ context.Context, cardReference string) (*domain.CardRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[cardReference]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r memCardRepo) TransitionRequest(_ context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.CardRequestStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.ID != id {
			continue
		}
		if req.Status != from {
			return false, nil
		}
		req.Status = to
		r.record(tx, func() { req.Status = from })
		return true, nil
	}
	return false, nil
}

func (r memCardRepo) CreateCard(_ context.Context, tx pgx.Tx, card *domain.VirtualCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.cards {
		if c.CardReference == card.CardReference {
			return ports.ErrDuplicate
		}
	}
	cp := *card
	r.cards[card.ID] = &cp
	r.record(tx, func() { delete(r.cards, card.ID) })
	return nil
}

func (r memCardRepo) GetCardByID(_ context.Context, id uuid.UUID) (*domain.VirtualCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r memCardRepo) GetCardByReference(_ context.Context, cardReference string) (*domain.VirtualCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.cards {
		if c.CardReference == cardReference {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memCardRepo) ListCardsByUser(_ context.Context, userID uuid.UUID) ([]domain.VirtualCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.VirtualCard
	for _, c := range r.cards {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r memCardRepo) IncrementCardBalance(_ context.Context, tx pgx.Tx, cardID uuid.UUID, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[cardID]
	if !ok {
		return errors.New("card not found")
	}
	prev := c.Balance
	c.Balance = c.Balance.Add(delta)
	r.record(tx, func() { c.Balance = prev })
	return nil
}

func (r memCardRepo) UpdateCardStatus(_ context.Context, cardID uuid.UUID, status domain.CardStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[cardID]
	if !ok {
		return errors.New("card not found")
	}
	c.Status = status
	return nil
}

// --- card transactions ---

type memCardTxnRepo struct{ *memLedger }

func (r memCardTxnRepo) Create(_ context.Context, t *domain.VirtualCardTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cardTxns[t.Reference]; ok {
		return ports.ErrDuplicate
	}
	cp := *t
	r.cardTxns[t.Reference] = &cp
	return nil
}

func (r memCardTxnRepo) GetByReference(_ context.Context, reference string) (*domain.VirtualCardTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.cardTxns[reference]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r memCardTxnRepo) TransitionStatus(_ context.Context, tx pgx.Tx, id uuid.UUID, to domain.CardTransactionStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.cardTxns {
		if t.ID != id {
			continue
		}
		if t.Status != domain.CardTransactionStatusPending {
			return false, nil
		}
		t.Status = to
		r.record(tx, func() { t.Status = domain.CardTransactionStatusPending })
		return true, nil
	}
	return false, nil
}

func (r memCardTxnRepo) ListByUser(_ context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.VirtualCardTransaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.VirtualCardTransaction
	for _, t := range r.cardTxns {
		if t.UserID == userID {
			all = append(all, *t)
		}
	}
	return paginate(all, page), int64(len(all)), nil
}

// --- journal ---

type memJournalRepo struct{ *memLedger }

func (r memJournalRepo) Create(_ context.Context, j *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.journal {
		if existing.Reference == j.Reference {
			return ports.ErrDuplicate
		}
	}
	cp := *j
	r.journal[j.ID] = &cp
	return nil
}

func (r memJournalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.journal[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r memJournalRepo) Transition(_ context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.JournalStatus, lastError string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.journal[id]
	if !ok || j.Status != from {
		return false, nil
	}
	prev := *j
	j.Status = to
	j.LastError = lastError
	j.UpdatedAt = time.Now().UTC()
	r.record(tx, func() { *j = prev })
	return true, nil
}

func (r memJournalRepo) ListByStatus(_ context.Context, status domain.JournalStatus, olderThan time.Time, limit int) ([]domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JournalEntry
	for _, j := range r.journal {
		if j.Status == status && j.UpdatedAt.Before(olderThan) {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].UpdatedAt.Before(out[b].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memJournalRepo) CountByStatus(_ context.Context, status domain.JournalStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.journal {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

// backdate makes every journal entry look older than any sweep grace.
func (l *memLedger) backdate(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, j := range l.journal {
		j.UpdatedAt = j.UpdatedAt.Add(-d)
	}
}

// --- pricing ---

type memPricingRepo struct{ *memLedger }

func (r memPricingRepo) GetExchangeMargin(_ context.Context) (decimal.Decimal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.margin == nil {
		return decimal.Zero, false, nil
	}
	return *r.margin, true, nil
}

func (r memPricingRepo) GetFee(_ context.Context, name string) (decimal.Decimal, domain.Currency, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fee, ok := r.fees[name]
	if !ok {
		return decimal.Zero, "", false, nil
	}
	return fee.Amount, fee.Currency, true, nil
}

func paginate[T any](all []T, page ports.PageParams) []T {
	page = page.Normalize()
	start := page.Offset()
	if start >= len(all) {
		return []T{}
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
