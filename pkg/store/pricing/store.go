package pricing

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/ini.v1"
)

const (
	DefaultCloud    = "aws"
	DefaultCurrency = "USD"
	HoursPerMonth   = 730
)

// RateCard holds the unit prices used to estimate the monthly bill of one
// cloud provider. Compute and database prices are hourly, the rest monthly.
type RateCard struct {
	Cloud          string
	Currency       string
	ComputeHourly  float64
	DatabaseHourly float64
	StorageMonthly float64
	OtherMonthly   float64
}

type Store interface {
	// GetRateCard returns the card for the cloud, or the default cloud's card
	// when the cloud is unknown.
	GetRateCard(ctx context.Context, cloud string) RateCard
	Register(card RateCard) error
	ListClouds() []string
	IsSupported(cloud string) bool
}

func DefaultRateCards() []RateCard {
	return []RateCard{
		{Cloud: "aws", Currency: DefaultCurrency, ComputeHourly: 0.10, DatabaseHourly: 0.15, StorageMonthly: 100, OtherMonthly: 50},
		{Cloud: "azure", Currency: DefaultCurrency, ComputeHourly: 0.12, DatabaseHourly: 0.18, StorageMonthly: 100, OtherMonthly: 50},
		{Cloud: "gcp", Currency: DefaultCurrency, ComputeHourly: 0.09, DatabaseHourly: 0.14, StorageMonthly: 100, OtherMonthly: 50},
	}
}

type pricingStore struct {
	mu    sync.RWMutex
	cards map[string]RateCard
}

// NewStore creates a store seeded with the default rate cards.
func NewStore() Store {
	s := &pricingStore{cards: make(map[string]RateCard)}
	for _, card := range DefaultRateCards() {
		s.cards[card.Cloud] = card
	}
	return s
}

// LoadFile creates a store from the defaults and overrides them with the
// sections of an INI file. Each section names a cloud; keys outside a
// section are ignored:
//
//	[azure]
//	compute_hourly = 0.11
//	database_hourly = 0.17
func LoadFile(path string) (Store, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate cards from %s: %w", path, err)
	}

	store := NewStore()
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection || len(section.Keys()) == 0 {
			continue
		}

		cloud := normalize(section.Name())
		card := store.GetRateCard(context.Background(), cloud)
		card.Cloud = cloud

		card.Currency = section.Key("currency").MustString(card.Currency)
		card.ComputeHourly = section.Key("compute_hourly").MustFloat64(card.ComputeHourly)
		card.DatabaseHourly = section.Key("database_hourly").MustFloat64(card.DatabaseHourly)
		card.StorageMonthly = section.Key("storage_monthly").MustFloat64(card.StorageMonthly)
		card.OtherMonthly = section.Key("other_monthly").MustFloat64(card.OtherMonthly)

		if err := store.Register(card); err != nil {
			return nil, fmt.Errorf("invalid rate card %q: %w", section.Name(), err)
		}
	}
	return store, nil
}

func (p *pricingStore) GetRateCard(_ context.Context, cloud string) RateCard {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if card, ok := p.cards[normalize(cloud)]; ok {
		return card
	}
	return p.cards[DefaultCloud]
}

// Register adds or replaces the rate card of a cloud.
func (p *pricingStore) Register(card RateCard) error {
	card.Cloud = normalize(card.Cloud)
	if card.Cloud == "" {
		return fmt.Errorf("cloud name cannot be empty")
	}
	if card.ComputeHourly < 0 || card.DatabaseHourly < 0 || card.StorageMonthly < 0 || card.OtherMonthly < 0 {
		return fmt.Errorf("prices for %q cannot be negative", card.Cloud)
	}
	if card.Currency == "" {
		card.Currency = DefaultCurrency
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards[card.Cloud] = card
	return nil
}

func (p *pricingStore) ListClouds() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	clouds := make([]string, 0, len(p.cards))
	for cloud := range p.cards {
		clouds = append(clouds, cloud)
	}
	slices.Sort(clouds)
	return clouds
}

func (p *pricingStore) IsSupported(cloud string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.cards[normalize(cloud)]
	return ok
}

func normalize(cloud string) string {
	return strings.ToLower(strings.TrimSpace(cloud))
}
