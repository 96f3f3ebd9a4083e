package store

import (
	"sync"
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// DefaultTTL is how long a bulk fetch stays fresh before ShouldRefresh
// asks for a new one.
const DefaultTTL = 15 * time.Minute

// Meta is the loading/error/freshness state exposed alongside every
// collection read.
type Meta struct {
	IsLoading   bool
	IsError     bool
	LastFetched time.Time
}

// Store is the single shared session cache: five named collections plus
// the two statistics snapshots. It is a passive container: the mutation
// engine is its only writer; handlers are read-only observers. One mutex
// serializes the synchronous portions of mutations.
type Store struct {
	mu sync.RWMutex

	Members      *Collection[domain.Member]
	Loans        *Collection[domain.Loan]
	Accounts     *Collection[domain.Account]
	Categories   *Collection[domain.Category]
	Transactions *Collection[domain.Transaction]

	loanStats  domain.LoanStatistics
	moneyStats domain.MoneyStatistics

	loading     bool
	failed      bool
	lastFetched time.Time
	ttl         time.Duration
}

// New creates an empty store. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Store {
	s := &Store{ttl: ttl}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	s.Members = newCollection[domain.Member](&s.mu)
	s.Loans = newCollection[domain.Loan](&s.mu)
	s.Accounts = newCollection[domain.Account](&s.mu)
	s.Categories = newCollection[domain.Category](&s.mu)
	s.Transactions = newCollection[domain.Transaction](&s.mu)
	return s
}

// ShouldRefresh reports whether a bulk reload is due: never fetched,
// fetched longer than the TTL ago, or the loans collection is empty.
// It gates only the bulk refresh; individual CRUD always writes through.
func (s *Store) ShouldRefresh(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastFetched.IsZero() {
		return true
	}
	if now.Sub(s.lastFetched) > s.ttl {
		return true
	}
	return len(s.Loans.items) == 0
}

// MarkFetched records a completed bulk fetch.
func (s *Store) MarkFetched(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFetched = t
}

func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) SetError(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = v
}

// Meta returns the current loading/error/freshness state.
func (s *Store) Meta() Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Meta{IsLoading: s.loading, IsError: s.failed, LastFetched: s.lastFetched}
}

// LoanStats returns the cached loan-tracker statistics snapshot.
func (s *Store) LoanStats() domain.LoanStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loanStats
}

// SetLoanStats replaces the loan-tracker statistics snapshot wholesale.
func (s *Store) SetLoanStats(st domain.LoanStatistics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loanStats = st
}

// MoneyStats returns the cached money-manager statistics snapshot.
func (s *Store) MoneyStats() domain.MoneyStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moneyStats
}

// SetMoneyStats replaces the money-manager statistics snapshot wholesale.
func (s *Store) SetMoneyStats(st domain.MoneyStatistics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moneyStats = st
}
