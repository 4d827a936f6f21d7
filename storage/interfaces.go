package storage

import "restaurant-scout/models"

// ResultStorage defines the interface for persisting a ranked result set
type ResultStorage interface {
	SaveResult(result *models.RankedResult) error
	Close() error
}
