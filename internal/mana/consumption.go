// internal/mana/consumption.go
package mana

import "sort"

// CheckResult is the outcome of an affordability query. A shortage is an
// expected gameplay state, not an error.
type CheckResult struct {
	CanConsume bool
	Shortage   int
}

// ConsumeResult is the outcome of a consumption attempt.
type ConsumeResult struct {
	Consumed  bool
	Shortage  int
	Remaining int
}

// SimulationResult describes the maximal affordable prefix of a cost list,
// costs taken cheapest first. Used for "how many more cards can I play"
// queries without mutating the pool.
type SimulationResult struct {
	AffordableCosts []int
	TotalCost       int
	AllAffordable   bool
}

// ConsumptionService applies the spending rules on top of pools and keeps a
// per-pool history of successful consumptions.
type ConsumptionService struct {
	history map[string][]Transaction
}

// NewConsumptionService builds a service with an empty history.
func NewConsumptionService() *ConsumptionService {
	return &ConsumptionService{history: make(map[string][]Transaction)}
}

// CanConsume is a pure affordability check. It only fails on a negative
// amount; shortage is reported in the result.
func (s *ConsumptionService) CanConsume(pool *Pool, amount int) (CheckResult, error) {
	if amount < 0 {
		return CheckResult{}, ErrInvalidAmount
	}
	if amount <= pool.Current() {
		return CheckResult{CanConsume: true}, nil
	}
	return CheckResult{Shortage: amount - pool.Current()}, nil
}

// Consume spends amount from the pool. Zero is a successful no-op; shortage
// leaves the pool untouched and reports Consumed=false; only a negative
// amount is an error. Every successful consumption is appended to the
// service's per-pool history.
func (s *ConsumptionService) Consume(pool *Pool, amount int, reason string, nowMillis int64) (ConsumeResult, error) {
	if amount < 0 {
		return ConsumeResult{}, ErrInvalidAmount
	}
	if amount == 0 {
		return ConsumeResult{Consumed: true, Remaining: pool.Current()}, nil
	}
	if !pool.CanAfford(amount) {
		return ConsumeResult{Shortage: amount - pool.Current(), Remaining: pool.Current()}, nil
	}
	if err := pool.Consume(amount, reason, nowMillis); err != nil {
		return ConsumeResult{}, err
	}
	s.history[pool.ID()] = append(s.history[pool.ID()], Transaction{
		Amount:    -amount,
		Reason:    reason,
		Timestamp: nowMillis,
	})
	return ConsumeResult{Consumed: true, Remaining: pool.Current()}, nil
}

// SimulateMultiple greedily orders costs ascending and returns the maximal
// affordable prefix. The pool is never mutated.
func (s *ConsumptionService) SimulateMultiple(pool *Pool, costs []int) (SimulationResult, error) {
	sorted := make([]int, 0, len(costs))
	for _, c := range costs {
		if c < 0 {
			return SimulationResult{}, ErrInvalidAmount
		}
		sorted = append(sorted, c)
	}
	sort.Ints(sorted)

	result := SimulationResult{}
	available := pool.Current()
	for _, c := range sorted {
		if result.TotalCost+c > available {
			break
		}
		result.TotalCost += c
		result.AffordableCosts = append(result.AffordableCosts, c)
	}
	result.AllAffordable = len(result.AffordableCosts) == len(sorted)
	return result, nil
}

// History returns a copy of the successful consumptions recorded for a pool.
func (s *ConsumptionService) History(poolID string) []Transaction {
	entries := s.history[poolID]
	out := make([]Transaction, len(entries))
	copy(out, entries)
	return out
}
