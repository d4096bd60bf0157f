package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/condogestor/condoasset-backend/internal/handlers/dto"
	"github.com/condogestor/condoasset-backend/internal/handlers/middleware"
	"github.com/condogestor/condoasset-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de cadastro e autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register cadastra um novo usuário
//
//	@Summary		Cadastra um usuário
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequest	true	"Dados de cadastro"
//	@Success		201		{object}	dto.AuthResponse
//	@Failure		400		{object}	dto.ValidationProblem
//	@Failure		409		{object}	problems.DefaultProblem
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(result))
}

// Login autentica um usuário por email e senha
//
//	@Summary		Autentica um usuário
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"Credenciais"
//	@Success		200		{object}	dto.AuthResponse
//	@Failure		401		{object}	problems.DefaultProblem
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

// Me retorna o perfil do usuário autenticado
//
//	@Summary		Perfil do usuário autenticado
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MeResponse
//	@Failure		401	{object}	problems.DefaultProblem
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		dto.AbortUnauthorized(c)
		return
	}

	user, err := h.authService.GetMe(c.Request.Context(), actor.ID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeResponse(user))
}

// UpdatePassword troca a senha do usuário autenticado
//
//	@Summary		Troca a senha
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.UpdatePasswordRequest	true	"Senha atual e nova"
//	@Success		200		{object}	dto.MessageResponse
//	@Failure		401		{object}	problems.DefaultProblem
//	@Router			/auth/password [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		dto.AbortUnauthorized(c)
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	err := h.authService.UpdatePassword(c.Request.Context(), actor.ID,
		req.CurrentPassword, req.NewPassword, req.NewPasswordConfirmation)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "auth.password_updated")})
}

// CheckEmail informa se um email está disponível para cadastro
//
//	@Summary		Verifica disponibilidade de email
//	@Tags			auth
//	@Produce		json
//	@Param			email	query		string	true	"Email a verificar"
//	@Success		200		{object}	dto.AvailabilityResponse
//	@Router			/auth/check-email [get]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		dto.RespondBindingError(c, nil)
		return
	}

	available, err := h.authService.CheckEmail(c.Request.Context(), email)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

// CheckCpfCnpj informa se um CPF/CNPJ está disponível para cadastro
//
//	@Summary		Verifica disponibilidade de CPF/CNPJ
//	@Tags			auth
//	@Produce		json
//	@Param			cpf_cnpj	query		string	true	"CPF ou CNPJ a verificar"
//	@Success		200			{object}	dto.AvailabilityResponse
//	@Router			/auth/check-cpf-cnpj [get]
func (h *AuthHandler) CheckCpfCnpj(c *gin.Context) {
	cpfCnpj := c.Query("cpf_cnpj")
	if cpfCnpj == "" {
		dto.RespondBindingError(c, nil)
		return
	}

	available, err := h.authService.CheckCpfCnpj(c.Request.Context(), cpfCnpj)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}
