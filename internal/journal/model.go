package journal

import (
	"encoding/json"
	"time"

	"github.com/rotasegura/beacon/internal/probe"
	"gorm.io/datatypes"
)

// SweepModel gorm representation of a Sweep
type SweepModel struct {
	ID         string `gorm:"primaryKey"`
	Platform   string
	Forced     bool
	Outcome    string `gorm:"index"`
	Host       string
	Port       int
	StartedAt  time.Time `gorm:"index"`
	FinishedAt time.Time
	Probes     datatypes.JSON
}

// TableName sets the sweep table name
func (SweepModel) TableName() string {
	return "sweeps"
}

func toModel(s *Sweep) (*SweepModel, error) {
	probes := s.Probes

	if probes == nil {
		probes = []probe.Result{}
	}

	data, err := json.Marshal(probes)

	if err != nil {
		return nil, err
	}

	return &SweepModel{
		ID:         s.ID,
		Platform:   s.Platform,
		Forced:     s.Forced,
		Outcome:    string(s.Outcome),
		Host:       s.Host,
		Port:       s.Port,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Probes:     datatypes.JSON(data),
	}, nil
}

func fromModel(m *SweepModel) (*Sweep, error) {
	probes := []probe.Result{}

	if len(m.Probes) > 0 {
		if err := json.Unmarshal(m.Probes, &probes); err != nil {
			return nil, err
		}
	}

	return &Sweep{
		ID:         m.ID,
		Platform:   m.Platform,
		Forced:     m.Forced,
		Outcome:    Outcome(m.Outcome),
		Host:       m.Host,
		Port:       m.Port,
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
		Probes:     probes,
	}, nil
}
