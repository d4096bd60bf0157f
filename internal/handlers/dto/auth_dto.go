package dto

import (
	"time"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/services"
)

// RegisterRequest representa a requisição de cadastro de usuário
type RegisterRequest struct {
	Name                 string `json:"name" binding:"required,min=2,max=100"`
	CpfCnpj              string `json:"cpf_cnpj" binding:"required,min=11,max=18"`
	Whatsapp             string `json:"whatsapp" binding:"required,min=10,max=20"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	UserType             string `json:"user_type" binding:"required,oneof=sindico_residente sindico_profissional admin_imoveis prestador"`

	DataNascimento *string `json:"data_nascimento" binding:"omitempty,datetime=2006-01-02"`
	EmailPessoal   *string `json:"email_pessoal" binding:"omitempty,email"`

	PeriodoMandatoInicio *string `json:"periodo_mandato_inicio" binding:"omitempty,datetime=2006-01-02"`
	PeriodoMandatoFim    *string `json:"periodo_mandato_fim" binding:"omitempty,datetime=2006-01-02"`
	SubsindicoInfo       *string `json:"subsindico_info"`

	NomeFantasia       *string `json:"nome_fantasia"`
	RazaoSocial        *string `json:"razao_social"`
	ResponsavelEmpresa *string `json:"responsavel_empresa"`
	Cep                *string `json:"cep"`
	Endereco           *string `json:"endereco"`
	Cidade             *string `json:"cidade"`
	UF                 *string `json:"uf" binding:"omitempty,len=2"`
	RegimeTributario   *string `json:"regime_tributario" binding:"omitempty,oneof=simples_nacional lucro_presumido lucro_real"`

	SegmentosAtuacao []string `json:"segmentos_atuacao"`
}

// ToInput converte a requisição para o input do serviço
func (r *RegisterRequest) ToInput() (services.RegisterInput, error) {
	dataNascimento, err := ParseDate(r.DataNascimento)
	if err != nil {
		return services.RegisterInput{}, err
	}
	mandatoInicio, err := ParseDate(r.PeriodoMandatoInicio)
	if err != nil {
		return services.RegisterInput{}, err
	}
	mandatoFim, err := ParseDate(r.PeriodoMandatoFim)
	if err != nil {
		return services.RegisterInput{}, err
	}

	var regime *entities.RegimeTributario
	if r.RegimeTributario != nil {
		v := entities.RegimeTributario(*r.RegimeTributario)
		regime = &v
	}

	return services.RegisterInput{
		Name:                 r.Name,
		CpfCnpj:              r.CpfCnpj,
		Whatsapp:             r.Whatsapp,
		Email:                r.Email,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
		UserType:             entities.UserType(r.UserType),
		DataNascimento:       dataNascimento,
		EmailPessoal:         r.EmailPessoal,
		PeriodoMandatoInicio: mandatoInicio,
		PeriodoMandatoFim:    mandatoFim,
		SubsindicoInfo:       r.SubsindicoInfo,
		NomeFantasia:         r.NomeFantasia,
		RazaoSocial:          r.RazaoSocial,
		ResponsavelEmpresa:   r.ResponsavelEmpresa,
		Cep:                  r.Cep,
		Endereco:             r.Endereco,
		Cidade:               r.Cidade,
		UF:                   r.UF,
		RegimeTributario:     regime,
		SegmentosAtuacao:     r.SegmentosAtuacao,
	}, nil
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest representa a requisição de troca de senha
type UpdatePasswordRequest struct {
	CurrentPassword         string `json:"current_password" binding:"required"`
	NewPassword             string `json:"new_password" binding:"required,min=8,max=72"`
	NewPasswordConfirmation string `json:"new_password_confirmation" binding:"required"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse representa o perfil completo do usuário autenticado
type MeResponse struct {
	UserResponse
	CpfCnpj        string  `json:"cpf_cnpj"`
	Whatsapp       string  `json:"whatsapp"`
	DataNascimento *string `json:"data_nascimento,omitempty"`
	EmailPessoal   *string `json:"email_pessoal,omitempty"`

	PeriodoMandatoInicio *string `json:"periodo_mandato_inicio,omitempty"`
	PeriodoMandatoFim    *string `json:"periodo_mandato_fim,omitempty"`
	SubsindicoInfo       *string `json:"subsindico_info,omitempty"`

	NomeFantasia       *string  `json:"nome_fantasia,omitempty"`
	RazaoSocial        *string  `json:"razao_social,omitempty"`
	ResponsavelEmpresa *string  `json:"responsavel_empresa,omitempty"`
	Cep                *string  `json:"cep,omitempty"`
	Endereco           *string  `json:"endereco,omitempty"`
	Cidade             *string  `json:"cidade,omitempty"`
	UF                 *string  `json:"uf,omitempty"`
	RegimeTributario   *string  `json:"regime_tributario,omitempty"`
	SegmentosAtuacao   []string `json:"segmentos_atuacao,omitempty"`
}

// AuthResponse representa a resposta de cadastro/login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AvailabilityResponse informa se um identificador está disponível
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		UserType:  string(user.UserType),
		CreatedAt: user.CreatedAt,
	}
}

// ToAuthResponse converte o resultado de cadastro/login
func ToAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		User:  ToUserResponse(result.User),
		Token: result.Token,
	}
}

// ToMeResponse converte a entidade User para o perfil completo
func ToMeResponse(user *entities.User) MeResponse {
	var regime *string
	if user.RegimeTributario != nil {
		s := string(*user.RegimeTributario)
		regime = &s
	}

	return MeResponse{
		UserResponse:         ToUserResponse(user),
		CpfCnpj:              user.CpfCnpj,
		Whatsapp:             user.Whatsapp,
		DataNascimento:       formatDate(user.DataNascimento),
		EmailPessoal:         user.EmailPessoal,
		PeriodoMandatoInicio: formatDate(user.PeriodoMandatoInicio),
		PeriodoMandatoFim:    formatDate(user.PeriodoMandatoFim),
		SubsindicoInfo:       user.SubsindicoInfo,
		NomeFantasia:         user.NomeFantasia,
		RazaoSocial:          user.RazaoSocial,
		ResponsavelEmpresa:   user.ResponsavelEmpresa,
		Cep:                  user.Cep,
		Endereco:             user.Endereco,
		Cidade:               user.Cidade,
		UF:                   user.UF,
		RegimeTributario:     regime,
		SegmentosAtuacao:     user.SegmentosAtuacao,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
