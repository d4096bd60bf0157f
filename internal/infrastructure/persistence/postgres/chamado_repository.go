package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
)

// ChamadoRepository implementa repositories.ChamadoRepository
type ChamadoRepository struct {
	db *gorm.DB
}

// NewChamadoRepository cria um novo ChamadoRepository
func NewChamadoRepository(db *gorm.DB) repositories.ChamadoRepository {
	return &ChamadoRepository{db: db}
}

func (r *ChamadoRepository) CountByImovel(ctx context.Context, imovelID string) (int64, error) {
	return r.count(ctx, "imovel_id = ?", imovelID)
}

func (r *ChamadoRepository) CountByAtivo(ctx context.Context, ativoID string) (int64, error) {
	return r.count(ctx, "ativo_id = ?", ativoID)
}

func (r *ChamadoRepository) ListRecentByImovel(ctx context.Context, imovelID string, limit int) ([]*entities.Chamado, error) {
	return r.listRecent(ctx, "imovel_id = ?", imovelID, limit)
}

func (r *ChamadoRepository) ListRecentByAtivo(ctx context.Context, ativoID string, limit int) ([]*entities.Chamado, error) {
	return r.listRecent(ctx, "ativo_id = ?", ativoID, limit)
}

func (r *ChamadoRepository) count(ctx context.Context, query string, arg any) (int64, error) {
	var count int64

	db := getDB(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&ChamadoModel{}).
		Where(query, arg).
		Count(&count).Error
	return count, err
}

func (r *ChamadoRepository) listRecent(ctx context.Context, query string, arg any, limit int) ([]*entities.Chamado, error) {
	var models []*ChamadoModel

	db := getDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	chamados := make([]*entities.Chamado, 0, len(models))
	for _, model := range models {
		chamados = append(chamados, &entities.Chamado{
			ID:                model.ID,
			ImovelID:          model.ImovelID,
			AtivoID:           model.AtivoID,
			NumeroChamado:     model.NumeroChamado,
			DescricaoOcorrido: model.DescricaoOcorrido,
			Status:            model.Status,
			Prioridade:        model.Prioridade,
			CreatedAt:         model.CreatedAt,
		})
	}
	return chamados, nil
}
