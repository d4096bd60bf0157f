package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
)

// ImovelRepository implementa repositories.ImovelRepository
type ImovelRepository struct {
	db *gorm.DB
}

// NewImovelRepository cria um novo ImovelRepository
func NewImovelRepository(db *gorm.DB) repositories.ImovelRepository {
	return &ImovelRepository{db: db}
}

func (r *ImovelRepository) Create(ctx context.Context, imovel *entities.Imovel) error {
	model := r.toModel(imovel)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	imovel.ID = model.ID
	imovel.CreatedAt = model.CreatedAt
	imovel.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ImovelRepository) FindByID(ctx context.Context, id string) (*entities.Imovel, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ImovelRepository) FindByCnpj(ctx context.Context, cnpj string) (*entities.Imovel, error) {
	return r.findOne(ctx, "cnpj = ?", cnpj)
}

func (r *ImovelRepository) ListByGestor(ctx context.Context, gestorID string) ([]*entities.Imovel, error) {
	var models []*ImovelModel

	db := getDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("gestor_id = ?", gestorID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	imoveis := make([]*entities.Imovel, 0, len(models))
	for _, model := range models {
		imoveis = append(imoveis, r.toEntity(model))
	}
	return imoveis, nil
}

func (r *ImovelRepository) Update(ctx context.Context, imovel *entities.Imovel) error {
	model := r.toModel(imovel)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *ImovelRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Delete(&ImovelModel{}, "id = ?", id).Error
}

func (r *ImovelRepository) findOne(ctx context.Context, query string, arg any) (*entities.Imovel, error) {
	var model ImovelModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// Conversores
func (r *ImovelRepository) toModel(imovel *entities.Imovel) *ImovelModel {
	var regime *string
	if imovel.RegimeTributario != nil {
		s := string(*imovel.RegimeTributario)
		regime = &s
	}

	return &ImovelModel{
		ID:                 imovel.ID,
		GestorID:           imovel.GestorID,
		Cnpj:               imovel.Cnpj,
		NomeFantasia:       imovel.NomeFantasia,
		RazaoSocial:        imovel.RazaoSocial,
		Cep:                imovel.Cep,
		Endereco:           imovel.Endereco,
		Cidade:             imovel.Cidade,
		UF:                 imovel.UF,
		RegimeTributario:   regime,
		QuantidadeMoradias: imovel.QuantidadeMoradias,
		AreasComuns:        marshalStringSlice(imovel.AreasComuns),
		EstatutoURL:        imovel.EstatutoURL,
		CreatedAt:          imovel.CreatedAt,
		UpdatedAt:          imovel.UpdatedAt,
	}
}

func (r *ImovelRepository) toEntity(model *ImovelModel) *entities.Imovel {
	var regime *entities.RegimeTributario
	if model.RegimeTributario != nil {
		v := entities.RegimeTributario(*model.RegimeTributario)
		regime = &v
	}

	return &entities.Imovel{
		ID:                 model.ID,
		GestorID:           model.GestorID,
		Cnpj:               model.Cnpj,
		NomeFantasia:       model.NomeFantasia,
		RazaoSocial:        model.RazaoSocial,
		Cep:                model.Cep,
		Endereco:           model.Endereco,
		Cidade:             model.Cidade,
		UF:                 model.UF,
		RegimeTributario:   regime,
		QuantidadeMoradias: model.QuantidadeMoradias,
		AreasComuns:        unmarshalStringSlice(model.AreasComuns),
		EstatutoURL:        model.EstatutoURL,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}
