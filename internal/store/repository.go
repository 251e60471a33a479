package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/ecowatt/solardevis/internal/models"
)

// QuoteRepository is the persistence boundary for saved quotes: a key-value
// mapping from client identity to frozen snapshot. The pricing and sizing
// engine never touches storage; handlers inject this at the edge.
type QuoteRepository interface {
	All() ([]models.QuoteSnapshot, error)
	Upsert(snap models.QuoteSnapshot) error
	Delete(clientKey string) error
}

// GormQuoteRepository stores snapshots in the local sqlite file, one row
// per client key.
type GormQuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// All returns every saved snapshot in save order. A row whose payload no
// longer decodes is skipped with a log line rather than blocking startup.
func (r *GormQuoteRepository) All() ([]models.QuoteSnapshot, error) {
	var rows []models.SavedQuote
	if err := r.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing saved quotes: %w", err)
	}
	snaps := make([]models.QuoteSnapshot, 0, len(rows))
	for _, row := range rows {
		var snap models.QuoteSnapshot
		if err := json.Unmarshal([]byte(row.Snapshot), &snap); err != nil {
			log.Printf("skipping unreadable snapshot for %q: %v", row.ClientKey, err)
			continue
		}
		snap.SavedAt = row.SavedAt
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// Upsert writes a snapshot under its client key, replacing any previous
// save for the same client.
func (r *GormQuoteRepository) Upsert(snap models.QuoteSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	key := snap.Profile.Key()

	var existing models.SavedQuote
	err = r.db.Where("client_key = ?", key).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := models.SavedQuote{
			ClientKey: key,
			Name:      snap.Profile.Name,
			Address:   snap.Profile.Address,
			SavedAt:   snap.SavedAt,
			Snapshot:  string(payload),
		}
		if err := r.db.Create(&row).Error; err != nil {
			return fmt.Errorf("saving quote for %q: %w", key, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("looking up quote for %q: %w", key, err)
	default:
		existing.Name = snap.Profile.Name
		existing.Address = snap.Profile.Address
		existing.SavedAt = snap.SavedAt
		existing.Snapshot = string(payload)
		if err := r.db.Save(&existing).Error; err != nil {
			return fmt.Errorf("updating quote for %q: %w", key, err)
		}
		return nil
	}
}

// Delete removes the snapshot for a client key. Deleting an absent key is
// not an error.
func (r *GormQuoteRepository) Delete(clientKey string) error {
	if err := r.db.Where("client_key = ?", clientKey).Delete(&models.SavedQuote{}).Error; err != nil {
		return fmt.Errorf("deleting quote for %q: %w", clientKey, err)
	}
	return nil
}
