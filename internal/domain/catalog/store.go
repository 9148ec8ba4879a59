// Package catalog holds the immutable-per-session reference data: services,
// price tables and per-table service prices, indexed for lookup.
package catalog

import (
	"sort"

	"espaco_eventos/internal/domain/entities"
)

// Store is the read-only catalog index. It is populated once at session start
// and never mutated afterwards. A restricted role may be handed a store built
// without price tables and price rows, in which case every price lookup
// resolves to zero and credits are treated as zero.
type Store struct {
	services   map[string]entities.Service
	byCategory map[entities.ServiceCategory][]entities.Service
	tables     map[string]entities.PriceTable
	prices     map[string]map[string]float64 // table id -> service id -> price
}

// New builds a Store from already-loaded catalog rows.
func New(services []entities.Service, tables []entities.PriceTable, prices []entities.ServicePrice) *Store {
	s := &Store{
		services:   make(map[string]entities.Service, len(services)),
		byCategory: make(map[entities.ServiceCategory][]entities.Service),
		tables:     make(map[string]entities.PriceTable, len(tables)),
		prices:     make(map[string]map[string]float64),
	}
	for _, svc := range services {
		s.services[svc.ID] = svc
		s.byCategory[svc.Category] = append(s.byCategory[svc.Category], svc)
	}
	for cat := range s.byCategory {
		list := s.byCategory[cat]
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	for _, t := range tables {
		s.tables[t.ID] = t
	}
	for _, p := range prices {
		m, ok := s.prices[p.PriceTableID]
		if !ok {
			m = make(map[string]float64)
			s.prices[p.PriceTableID] = m
		}
		m[p.ServiceID] = p.Price
	}
	return s
}

// ServiceByID returns the service and whether it exists.
func (s *Store) ServiceByID(id string) (entities.Service, bool) {
	svc, ok := s.services[id]
	return svc, ok
}

// ServicesByCategory returns the services of one category, name-ordered.
func (s *Store) ServicesByCategory(cat entities.ServiceCategory) []entities.Service {
	return s.byCategory[cat]
}

// Services returns all services grouped in the fixed category order.
func (s *Store) Services() []entities.Service {
	var out []entities.Service
	for _, cat := range entities.CategoryOrder() {
		out = append(out, s.byCategory[cat]...)
	}
	return out
}

// PriceTable returns the table and whether it exists.
func (s *Store) PriceTable(id string) (entities.PriceTable, bool) {
	t, ok := s.tables[id]
	return t, ok
}

// PriceTables returns all tables, name-ordered.
func (s *Store) PriceTables() []entities.PriceTable {
	out := make([]entities.PriceTable, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Price returns the explicit price for a (table, service) pair and whether
// such a row exists. A missing pair resolves to zero.
func (s *Store) Price(tableID, serviceID string) (float64, bool) {
	m, ok := s.prices[tableID]
	if !ok {
		return 0, false
	}
	p, ok := m[serviceID]
	return p, ok
}
