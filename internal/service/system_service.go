package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/database"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
	"github.com/ndewijer/TradeLog-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version and the applied schema version.
// MigrationNeeded is set when an embedded migration has not been applied yet.
func (s *SystemService) CheckVersion(ctx context.Context) (model.VersionInfo, error) {
	schemaVersion, err := database.SchemaVersion(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersionInfo, err)
	}

	states, err := database.Status(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersionInfo, err)
	}

	info := model.VersionInfo{
		AppVersion:    version.Version,
		SchemaVersion: schemaVersion,
	}
	for _, st := range states {
		if !st.Applied {
			info.MigrationNeeded = true
			break
		}
	}
	return info, nil
}
