package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/condogestor/condoasset-backend/internal/domain/assetcode"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
)

// AssetCodeSequence implementa repositories.AssetCodeSequence com um
// contador dedicado incrementado atomicamente no banco. Substitui o padrão
// ler-máximo-e-incrementar, que emite códigos duplicados sob concorrência.
type AssetCodeSequence struct {
	db *gorm.DB
}

// NewAssetCodeSequence cria uma nova AssetCodeSequence
func NewAssetCodeSequence(db *gorm.DB) repositories.AssetCodeSequence {
	return &AssetCodeSequence{db: db}
}

func (s *AssetCodeSequence) Next(ctx context.Context) (string, error) {
	db := getDB(ctx, s.db)

	var value int64
	err := db.WithContext(ctx).
		Raw("UPDATE asset_code_seqs SET value = value + 1 WHERE id = 1 RETURNING value").
		Scan(&value).Error
	if err != nil {
		return "", err
	}
	if value == 0 {
		return "", fmt.Errorf("asset code sequence not initialized")
	}

	return assetcode.Format(value), nil
}
