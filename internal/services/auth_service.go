package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
	"github.com/condogestor/condoasset-backend/internal/domain/ports"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
)

// bcryptCost segue o custo usado nos cadastros existentes
const bcryptCost = 12

// AuthService contém a lógica de cadastro e autenticação de usuários
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   ports.TokenIssuer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(userRepo repositories.UserRepository, tokens ports.TokenIssuer, logger ports.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput representa os dados de cadastro de um usuário
type RegisterInput struct {
	Name                 string
	CpfCnpj              string
	Whatsapp             string
	Email                string
	Password             string
	PasswordConfirmation string
	UserType             entities.UserType

	DataNascimento *time.Time
	EmailPessoal   *string

	// Síndicos
	PeriodoMandatoInicio *time.Time
	PeriodoMandatoFim    *time.Time
	SubsindicoInfo       *string

	// Empresas
	NomeFantasia       *string
	RazaoSocial        *string
	ResponsavelEmpresa *string
	Cep                *string
	Endereco           *string
	Cidade             *string
	UF                 *string
	RegimeTributario   *entities.RegimeTributario

	// Prestadores
	SegmentosAtuacao []string
}

// AuthResult é o retorno das operações de cadastro e login
type AuthResult struct {
	User  *entities.User
	Token string
}

// Register cadastra um novo usuário e emite seu token de acesso
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Password != input.PasswordConfirmation {
		return nil, errors.ErrSenhasNaoCoincidem
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailEmUso
	}

	existing, err = s.userRepo.FindByCpfCnpj(ctx, input.CpfCnpj)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCpfCnpjEmUso
	}

	existing, err = s.userRepo.FindByWhatsapp(ctx, input.Whatsapp)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrWhatsappEmUso
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:           input.Name,
		CpfCnpj:        input.CpfCnpj,
		Whatsapp:       input.Whatsapp,
		Email:          input.Email,
		PasswordHash:   string(hash),
		UserType:       input.UserType,
		DataNascimento: input.DataNascimento,
		EmailPessoal:   input.EmailPessoal,
	}

	// Campos específicos por tipo de usuário
	if input.UserType.IsSindico() {
		user.PeriodoMandatoInicio = input.PeriodoMandatoInicio
		user.PeriodoMandatoFim = input.PeriodoMandatoFim
		user.SubsindicoInfo = input.SubsindicoInfo
	}

	if input.UserType.IsEmpresa() {
		user.NomeFantasia = input.NomeFantasia
		user.RazaoSocial = input.RazaoSocial
		user.ResponsavelEmpresa = input.ResponsavelEmpresa
		user.Cep = input.Cep
		user.Endereco = input.Endereco
		user.Cidade = input.Cidade
		user.UF = input.UF
		user.RegimeTributario = input.RegimeTributario

		if input.UserType == entities.UserTypePrestador {
			user.SegmentosAtuacao = input.SegmentosAtuacao
			if user.SegmentosAtuacao == nil {
				user.SegmentosAtuacao = []string{}
			}
		}
	}

	if err := user.Validate(); err != nil {
		return nil, errors.Wrap(errors.KindValidation, "error.validation.detail", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("usuario cadastrado", "user_id", user.ID, "user_type", user.UserType)

	return &AuthResult{User: user, Token: token}, nil
}

// Login autentica um usuário por email e senha
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrCredenciaisInvalidas
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// GetMe retorna o perfil do usuário autenticado
func (s *AuthService) GetMe(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUsuarioNotFound
	}
	return user, nil
}

// UpdatePassword troca a senha do usuário autenticado
func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword, confirmation string) error {
	if newPassword != confirmation {
		return errors.ErrSenhasNaoCoincidem
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUsuarioNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.ErrSenhaAtualIncorreta
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}

// CheckEmail informa se um email está disponível para cadastro
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user == nil, nil
}

// CheckCpfCnpj informa se um CPF/CNPJ está disponível para cadastro
func (s *AuthService) CheckCpfCnpj(ctx context.Context, cpfCnpj string) (bool, error) {
	user, err := s.userRepo.FindByCpfCnpj(ctx, cpfCnpj)
	if err != nil {
		return false, err
	}
	return user == nil, nil
}
