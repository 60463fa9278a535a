package memory

import (
	"context"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

// SetStock overwrites the available units of one pool.
func (s *Store) SetStock(hospitalID string, group domain.BloodGroup, available int) {
	s.invMu.Lock()
	defer s.invMu.Unlock()
	s.pool(hospitalID, group).Available = available
}

// pool must be called with invMu held.
func (s *Store) pool(hospitalID string, group domain.BloodGroup) *ports.InventoryLevel {
	k := poolKey{hospitalID, group}
	p, ok := s.inventory[k]
	if !ok {
		p = &ports.InventoryLevel{HospitalID: hospitalID, BloodGroup: group}
		s.inventory[k] = p
	}
	return p
}

func checkUnits(units int) error {
	if units <= 0 {
		return domain.Validationf("units must be positive, got %d", units)
	}
	return nil
}

func (s *Store) Reserve(_ context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}
	s.invMu.Lock()
	defer s.invMu.Unlock()
	p := s.pool(hospitalID, group)
	if p.Available < units {
		return domain.InsufficientInventory(hospitalID, group, p.Available, units)
	}
	p.Available -= units
	p.Reserved += units
	return nil
}

func (s *Store) Release(_ context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}
	s.invMu.Lock()
	defer s.invMu.Unlock()
	p := s.pool(hospitalID, group)
	if p.Reserved < units {
		return domain.Validationf("release of %d units exceeds %d reserved at %s/%s", units, p.Reserved, hospitalID, group)
	}
	p.Reserved -= units
	p.Available += units
	return nil
}

func (s *Store) Consume(_ context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}
	s.invMu.Lock()
	defer s.invMu.Unlock()
	p := s.pool(hospitalID, group)
	if p.Reserved < units {
		return domain.Validationf("consume of %d units exceeds %d reserved at %s/%s", units, p.Reserved, hospitalID, group)
	}
	p.Reserved -= units
	p.Consumed += units
	return nil
}

func (s *Store) Receive(_ context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if units < 0 {
		return domain.Validationf("units must not be negative, got %d", units)
	}
	s.invMu.Lock()
	defer s.invMu.Unlock()
	s.pool(hospitalID, group).Available += units
	return nil
}

func (s *Store) Available(_ context.Context, hospitalID string, group domain.BloodGroup) (int, error) {
	s.invMu.Lock()
	defer s.invMu.Unlock()
	if p, ok := s.inventory[poolKey{hospitalID, group}]; ok {
		return p.Available, nil
	}
	return 0, nil
}

func (s *Store) Level(_ context.Context, hospitalID string, group domain.BloodGroup) (ports.InventoryLevel, error) {
	s.invMu.Lock()
	defer s.invMu.Unlock()
	if p, ok := s.inventory[poolKey{hospitalID, group}]; ok {
		return *p, nil
	}
	return ports.InventoryLevel{HospitalID: hospitalID, BloodGroup: group}, nil
}
