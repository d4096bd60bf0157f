package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/condogestor/condoasset-backend/internal/handlers/dto"
	"github.com/condogestor/condoasset-backend/internal/services"
)

// AtivoHandler lida com requisições HTTP relacionadas a ativos físicos
type AtivoHandler struct {
	ativoService *services.AtivoService
}

// NewAtivoHandler cria um novo AtivoHandler
func NewAtivoHandler(ativoService *services.AtivoService) *AtivoHandler {
	return &AtivoHandler{
		ativoService: ativoService,
	}
}

// Create cadastra um novo ativo no imóvel
//
//	@Summary		Cadastra um ativo
//	@Tags			ativos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID do imóvel"
//	@Param			request	body		dto.CreateAtivoRequest	true	"Dados do ativo"
//	@Success		201		{object}	dto.AtivoResponse
//	@Failure		400		{object}	dto.ValidationProblem
//	@Failure		403		{object}	problems.DefaultProblem
//	@Failure		404		{object}	problems.DefaultProblem
//	@Router			/imoveis/{id}/ativos [post]
func (h *AtivoHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateAtivoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	view, err := h.ativoService.Create(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAtivoResponse(view))
}

// List lista os ativos do imóvel ordenados por asset_code
//
//	@Summary		Lista os ativos de um imóvel
//	@Tags			ativos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do imóvel"
//	@Success		200	{array}		dto.AtivoResponse
//	@Failure		403	{object}	problems.DefaultProblem
//	@Failure		404	{object}	problems.DefaultProblem
//	@Router			/imoveis/{id}/ativos [get]
func (h *AtivoHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	views, err := h.ativoService.ListByImovel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAtivoResponses(views))
}

// Get busca um ativo do imóvel com chamados recentes
//
//	@Summary		Detalha um ativo
//	@Tags			ativos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string	true	"ID do imóvel"
//	@Param			ativoId	path		string	true	"ID do ativo"
//	@Success		200		{object}	dto.AtivoDetailResponse
//	@Failure		403		{object}	problems.DefaultProblem
//	@Failure		404		{object}	problems.DefaultProblem
//	@Router			/imoveis/{id}/ativos/{ativoId} [get]
func (h *AtivoHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	detail, err := h.ativoService.GetOne(c.Request.Context(), actor, c.Param("id"), c.Param("ativoId"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAtivoDetailResponse(detail))
}

// Update atualiza parcialmente um ativo
//
//	@Summary		Atualiza um ativo
//	@Tags			ativos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID do imóvel"
//	@Param			ativoId	path		string					true	"ID do ativo"
//	@Param			request	body		dto.UpdateAtivoRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.AtivoResponse
//	@Failure		403		{object}	problems.DefaultProblem
//	@Failure		404		{object}	problems.DefaultProblem
//	@Router			/imoveis/{id}/ativos/{ativoId} [put]
func (h *AtivoHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateAtivoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	view, err := h.ativoService.Update(c.Request.Context(), actor, c.Param("id"), c.Param("ativoId"), input)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAtivoResponse(view))
}

// Delete remove um ativo sem chamados vinculados
//
//	@Summary		Remove um ativo
//	@Tags			ativos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string	true	"ID do imóvel"
//	@Param			ativoId	path		string	true	"ID do ativo"
//	@Success		200		{object}	dto.MessageResponse
//	@Failure		403		{object}	problems.DefaultProblem
//	@Failure		404		{object}	problems.DefaultProblem
//	@Router			/imoveis/{id}/ativos/{ativoId} [delete]
func (h *AtivoHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if err := h.ativoService.Delete(c.Request.Context(), actor, c.Param("id"), c.Param("ativoId")); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "ativo.deleted")})
}
