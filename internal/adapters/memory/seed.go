package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"bloodlink/internal/domain"
)

// Seed is the JSON shape accepted by LoadSeed.
type Seed struct {
	Hospitals []struct {
		domain.Hospital
		Stock map[domain.BloodGroup]int `json:"stock"`
	} `json:"hospitals"`
}

// LoadSeed registers hospitals and their stock from a JSON file.
func (s *Store) LoadSeed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed: %w", err)
	}
	for _, h := range seed.Hospitals {
		if h.ID == "" {
			return fmt.Errorf("seed hospital without id")
		}
		s.PutHospital(h.Hospital)
		for g, units := range h.Stock {
			if !g.Valid() {
				return fmt.Errorf("seed hospital %s: unknown blood group %q", h.ID, g)
			}
			s.SetStock(h.ID, g, units)
		}
	}
	return nil
}
