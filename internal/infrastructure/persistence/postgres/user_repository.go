package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*entities.User, error) {
	return r.findOne(ctx, "cpf_cnpj = ?", cpfCnpj)
}

func (r *UserRepository) FindByWhatsapp(ctx context.Context, whatsapp string) (*entities.User, error) {
	return r.findOne(ctx, "whatsapp = ?", whatsapp)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var model UserModel

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
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var regime *string
	if user.RegimeTributario != nil {
		s := string(*user.RegimeTributario)
		regime = &s
	}

	return &UserModel{
		ID:                   user.ID,
		Name:                 user.Name,
		CpfCnpj:              user.CpfCnpj,
		Whatsapp:             user.Whatsapp,
		Email:                user.Email,
		PasswordHash:         user.PasswordHash,
		UserType:             string(user.UserType),
		DataNascimento:       user.DataNascimento,
		EmailPessoal:         user.EmailPessoal,
		PeriodoMandatoInicio: user.PeriodoMandatoInicio,
		PeriodoMandatoFim:    user.PeriodoMandatoFim,
		SubsindicoInfo:       user.SubsindicoInfo,
		NomeFantasia:         user.NomeFantasia,
		RazaoSocial:          user.RazaoSocial,
		ResponsavelEmpresa:   user.ResponsavelEmpresa,
		Cep:                  user.Cep,
		Endereco:             user.Endereco,
		Cidade:               user.Cidade,
		UF:                   user.UF,
		RegimeTributario:     regime,
		SegmentosAtuacao:     marshalStringSlice(user.SegmentosAtuacao),
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	var regime *entities.RegimeTributario
	if model.RegimeTributario != nil {
		v := entities.RegimeTributario(*model.RegimeTributario)
		regime = &v
	}

	return &entities.User{
		ID:                   model.ID,
		Name:                 model.Name,
		CpfCnpj:              model.CpfCnpj,
		Whatsapp:             model.Whatsapp,
		Email:                model.Email,
		PasswordHash:         model.PasswordHash,
		UserType:             entities.UserType(model.UserType),
		DataNascimento:       model.DataNascimento,
		EmailPessoal:         model.EmailPessoal,
		PeriodoMandatoInicio: model.PeriodoMandatoInicio,
		PeriodoMandatoFim:    model.PeriodoMandatoFim,
		SubsindicoInfo:       model.SubsindicoInfo,
		NomeFantasia:         model.NomeFantasia,
		RazaoSocial:          model.RazaoSocial,
		ResponsavelEmpresa:   model.ResponsavelEmpresa,
		Cep:                  model.Cep,
		Endereco:             model.Endereco,
		Cidade:               model.Cidade,
		UF:                   model.UF,
		RegimeTributario:     regime,
		SegmentosAtuacao:     unmarshalStringSlice(model.SegmentosAtuacao),
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}
