package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/condogestor/condoasset-backend/internal/handlers/dto"
	"github.com/condogestor/condoasset-backend/internal/handlers/middleware"
	"github.com/condogestor/condoasset-backend/internal/services"
)

// ImovelHandler lida com requisições HTTP relacionadas a imóveis
type ImovelHandler struct {
	imovelService *services.ImovelService
}

// NewImovelHandler cria um novo ImovelHandler
func NewImovelHandler(imovelService *services.ImovelService) *ImovelHandler {
	return &ImovelHandler{
		imovelService: imovelService,
	}
}

func actorFrom(c *gin.Context) (services.Actor, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		dto.AbortUnauthorized(c)
		return services.Actor{}, false
	}
	return services.Actor{ID: user.ID, UserType: user.UserType}, true
}

// Create cadastra um novo imóvel para o gestor autenticado
//
//	@Summary		Cadastra um imóvel
//	@Tags			imoveis
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateImovelRequest	true	"Dados do imóvel"
//	@Success		201		{object}	dto.ImovelResponse
//	@Failure		400		{object}	dto.ValidationProblem
//	@Failure		403		{object}	problems.DefaultProblem
//	@Failure		409		{object}	problems.DefaultProblem
//	@Router			/imoveis [post]
func (h *ImovelHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateImovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	view, err := h.imovelService.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToImovelResponse(view))
}

// List lista os imóveis do gestor autenticado
//
//	@Summary		Lista os imóveis do gestor
//	@Tags			imoveis
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ImovelResponse
//	@Failure		403	{object}	problems.DefaultProblem
//	@Router			/imoveis [get]
func (h *ImovelHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	views, err := h.imovelService.ListByGestor(c.Request.Context(), actor)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToImovelResponses(views))
}

// Get busca um imóvel por ID com ativos e chamados recentes
//
//	@Summary		Detalha um imóvel
//	@Tags			imoveis
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do imóvel"
//	@Success		200	{object}	dto.ImovelDetailResponse
//	@Failure		403	{object}	problems.DefaultProblem
//	@Failure		404	{object}	problems.DefaultProblem
//	@Router			/imoveis/{id} [get]
func (h *ImovelHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	detail, err := h.imovelService.GetOne(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToImovelDetailResponse(detail))
}

// Update atualiza parcialmente um imóvel
//
//	@Summary		Atualiza um imóvel
//	@Tags			imoveis
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID do imóvel"
//	@Param			request	body		dto.UpdateImovelRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.ImovelResponse
//	@Failure		403		{object}	problems.DefaultProblem
//	@Failure		404		{object}	problems.DefaultProblem
//	@Failure		409		{object}	problems.DefaultProblem
//	@Router			/imoveis/{id} [put]
func (h *ImovelHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateImovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	view, err := h.imovelService.Update(c.Request.Context(), actor, c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToImovelResponse(view))
}

// Delete remove um imóvel sem ativos e sem chamados
//
//	@Summary		Remove um imóvel
//	@Tags			imoveis
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do imóvel"
//	@Success		200	{object}	dto.MessageResponse
//	@Failure		403	{object}	problems.DefaultProblem
//	@Failure		404	{object}	problems.DefaultProblem
//	@Failure		409	{object}	problems.DefaultProblem
//	@Router			/imoveis/{id} [delete]
func (h *ImovelHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if err := h.imovelService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "imovel.deleted")})
}
