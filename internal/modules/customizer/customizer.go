package customizer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"tissovison.com/app/internal/storage"
)

// StorageKey is the durable-storage namespace the config persists under.
const StorageKey = "tisso_vison_customizer_config"

// Config is the editable storefront content plus the product selection for
// the grid. JSON keys match the persisted config layout.
type Config struct {
	BrandName          string `json:"brandName"`
	TopBannerText      string `json:"topBannerText"`
	ButtonText         string `json:"buttonText"`
	HeroTitle          string `json:"heroTitle"`
	HeroDescription    string `json:"heroDescription"`
	ShopButtonText     string `json:"shopButtonText"`
	SustainableMessage string `json:"sustainableMessage"`
	SectionTitle       string `json:"sectionTitle"`
	SelectedProducts   []int  `json:"selectedProducts"`
}

// Defaults is the stock storefront content.
func Defaults() Config {
	return Config{
		BrandName:          "TISSO VISON",
		TopBannerText:      "Find the ideal gift for your loved ones.",
		ButtonText:         "CHOOSE GIFT",
		HeroTitle:          "The Gift Guide",
		HeroDescription:    "Discover Joy: Your Ultimate Holiday Gift Destination. Explore our curated selection and find the perfect gifts to delight your loved ones this holiday season.",
		ShopButtonText:     "SHOP NOW",
		SustainableMessage: "SUSTAINABLE, ETHICALLY MADE CLOTHES IN SIZES XXS TO 6XL",
		SectionTitle:       "Tisso vison in the wild",
		SelectedProducts:   []int{1, 2, 3, 4, 5, 6},
	}
}

// Observer receives the new config after every change.
type Observer func(Config)

// Service owns the customizer config: load-at-construction, save on change,
// export/import as raw JSON. Malformed persisted data falls back to defaults.
type Service struct {
	store storage.Store
	log   *slog.Logger

	mu        sync.Mutex
	config    Config
	observers []Observer
}

func NewService(store storage.Store, log *slog.Logger) *Service {
	s := &Service{store: store, log: log, config: Defaults()}
	s.load()
	return s
}

func (s *Service) load() {
	raw, err := s.store.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("customizer: could not load config", "err", err)
		}
		return
	}

	cfg := Defaults()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		s.log.Warn("customizer: persisted config is malformed, using defaults", "err", err)
		return
	}
	s.config = cfg
}

func (s *Service) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Config returns a copy of the current config.
func (s *Service) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Set replaces the config, persists it and notifies observers.
func (s *Service) Set(cfg Config) {
	s.mu.Lock()
	s.config = cfg
	s.persistLocked()
	out := s.copyLocked()
	s.mu.Unlock()

	s.notify(out)
}

// Reset restores the default config.
func (s *Service) Reset() {
	s.Set(Defaults())
}

// Export serializes the current config.
func (s *Service) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.config, "", "  ")
}

// Import replaces the config with raw JSON merged over the defaults.
// Invalid JSON is rejected and the current config is untouched.
func (s *Service) Import(raw []byte) error {
	cfg := Defaults()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return err
	}
	s.Set(cfg)
	return nil
}

func (s *Service) copyLocked() Config {
	out := s.config
	out.SelectedProducts = append([]int(nil), s.config.SelectedProducts...)
	return out
}

func (s *Service) persistLocked() {
	raw, err := json.Marshal(s.config)
	if err != nil {
		s.log.Warn("customizer: could not serialize config", "err", err)
		return
	}
	if err := s.store.Set(context.Background(), StorageKey, raw); err != nil {
		s.log.Warn("customizer: could not persist config", "err", err)
	}
}

func (s *Service) notify(cfg Config) {
	s.mu.Lock()
	obs := make([]Observer, len(s.observers))
	copy(obs, s.observers)
	s.mu.Unlock()

	for _, fn := range obs {
		fn(cfg)
	}
}
