package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
)

// AtivoRepository implementa repositories.AtivoRepository
type AtivoRepository struct {
	db *gorm.DB
}

// NewAtivoRepository cria um novo AtivoRepository
func NewAtivoRepository(db *gorm.DB) repositories.AtivoRepository {
	return &AtivoRepository{db: db}
}

func (r *AtivoRepository) Create(ctx context.Context, ativo *entities.Ativo) error {
	model, err := r.toModel(ativo)
	if err != nil {
		return err
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	ativo.ID = model.ID
	ativo.CreatedAt = model.CreatedAt
	ativo.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AtivoRepository) FindByID(ctx context.Context, imovelID, ativoID string) (*entities.Ativo, error) {
	var model AtivoModel

	db := getDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("id = ? AND imovel_id = ?", ativoID, imovelID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AtivoRepository) ListByImovel(ctx context.Context, imovelID string) ([]*entities.Ativo, error) {
	var models []*AtivoModel

	db := getDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("imovel_id = ?", imovelID).
		Order("asset_code ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	ativos := make([]*entities.Ativo, 0, len(models))
	for _, model := range models {
		ativo, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		ativos = append(ativos, ativo)
	}
	return ativos, nil
}

func (r *AtivoRepository) CountByImovel(ctx context.Context, imovelID string) (int64, error) {
	var count int64

	db := getDB(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&AtivoModel{}).
		Where("imovel_id = ?", imovelID).
		Count(&count).Error
	return count, err
}

func (r *AtivoRepository) Update(ctx context.Context, ativo *entities.Ativo) error {
	model, err := r.toModel(ativo)
	if err != nil {
		return err
	}

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *AtivoRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Delete(&AtivoModel{}, "id = ?", id).Error
}

// Conversores
func (r *AtivoRepository) toModel(ativo *entities.Ativo) (*AtivoModel, error) {
	var garantiaInfo, contratoInfo *string
	var err error

	if ativo.GarantiaFornecedorInfo != nil {
		if garantiaInfo, err = marshalJSON(ativo.GarantiaFornecedorInfo); err != nil {
			return nil, err
		}
	}
	if ativo.ContratoFornecedorInfo != nil {
		if contratoInfo, err = marshalJSON(ativo.ContratoFornecedorInfo); err != nil {
			return nil, err
		}
	}

	return &AtivoModel{
		ID:                       ativo.ID,
		ImovelID:                 ativo.ImovelID,
		AssetCode:                ativo.AssetCode,
		DescricaoAtivo:           ativo.DescricaoAtivo,
		LocalInstalacao:          ativo.LocalInstalacao,
		Marca:                    ativo.Marca,
		Modelo:                   ativo.Modelo,
		DataInstalacao:           ativo.DataInstalacao,
		ValorCompra:              ativo.ValorCompra,
		Garantia:                 ativo.Garantia,
		GarantiaValidade:         ativo.GarantiaValidade,
		GarantiaFornecedorInfo:   garantiaInfo,
		ContratoManutencao:       ativo.ContratoManutencao,
		ContratoValidade:         ativo.ContratoValidade,
		ContratoFornecedorInfo:   contratoInfo,
		RelatorioFotograficoURLs: marshalStringSlice(ativo.RelatorioFotograficoURLs),
		CreatedAt:                ativo.CreatedAt,
		UpdatedAt:                ativo.UpdatedAt,
	}, nil
}

func (r *AtivoRepository) toEntity(model *AtivoModel) (*entities.Ativo, error) {
	var garantiaInfo *entities.FornecedorGarantia
	if model.GarantiaFornecedorInfo != nil {
		garantiaInfo = &entities.FornecedorGarantia{}
		if err := json.Unmarshal([]byte(*model.GarantiaFornecedorInfo), garantiaInfo); err != nil {
			return nil, err
		}
	}

	var contratoInfo *entities.FornecedorContrato
	if model.ContratoFornecedorInfo != nil {
		contratoInfo = &entities.FornecedorContrato{}
		if err := json.Unmarshal([]byte(*model.ContratoFornecedorInfo), contratoInfo); err != nil {
			return nil, err
		}
	}

	return &entities.Ativo{
		ID:                       model.ID,
		ImovelID:                 model.ImovelID,
		AssetCode:                model.AssetCode,
		DescricaoAtivo:           model.DescricaoAtivo,
		LocalInstalacao:          model.LocalInstalacao,
		Marca:                    model.Marca,
		Modelo:                   model.Modelo,
		DataInstalacao:           model.DataInstalacao,
		ValorCompra:              model.ValorCompra,
		Garantia:                 model.Garantia,
		GarantiaValidade:         model.GarantiaValidade,
		GarantiaFornecedorInfo:   garantiaInfo,
		ContratoManutencao:       model.ContratoManutencao,
		ContratoValidade:         model.ContratoValidade,
		ContratoFornecedorInfo:   contratoInfo,
		RelatorioFotograficoURLs: unmarshalStringSlice(model.RelatorioFotograficoURLs),
		CreatedAt:                model.CreatedAt,
		UpdatedAt:                model.UpdatedAt,
	}, nil
}
