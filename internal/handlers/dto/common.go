package dto

import (
	errs "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/condogestor/condoasset-backend/internal/domain/errors"
)

// FieldError representa um erro de validação de campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ValidationProblem estende o problema RFC 7807 com os erros de campo
type ValidationProblem struct {
	problems.DefaultProblem
	Errors []FieldError `json:"errors,omitempty"`
}

// kindMapping define, por kind de erro de domínio, o status HTTP, o tipo de
// problema e a chave do título
var kindMapping = map[errors.Kind]struct {
	status      int
	problemType string
	titleKey    string
}{
	errors.KindNotFound:     {http.StatusNotFound, errors.ProblemTypeNotFound, "error.not_found.title"},
	errors.KindForbidden:    {http.StatusForbidden, errors.ProblemTypeForbidden, "error.forbidden.title"},
	errors.KindConflict:     {http.StatusConflict, errors.ProblemTypeConflict, "error.conflict.title"},
	errors.KindValidation:   {http.StatusBadRequest, errors.ProblemTypeValidation, "error.validation.title"},
	errors.KindUnauthorized: {http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title"},
	errors.KindInternal:     {http.StatusInternalServerError, errors.ProblemTypeInternal, "error.internal.title"},
}

// NewProblem cria um problema RFC 7807 com título e detalhe traduzidos
func NewProblem(c *gin.Context, problemType string, status int, titleKey, detailKey string, params ...map[string]interface{}) *problems.DefaultProblem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewStatusProblem(status)
	p.Type = baseURL + problemType
	p.Title = T(c, titleKey, params...)
	p.Detail = T(c, detailKey, params...)
	p.Instance = c.Request.URL.Path
	return p
}

// RespondDomainError escreve a resposta RFC 7807 de um erro de domínio
func RespondDomainError(c *gin.Context, err error) {
	kind := errors.KindOf(err)
	mapping, ok := kindMapping[kind]
	if !ok {
		mapping = kindMapping[errors.KindInternal]
	}

	detailKey := "error.internal.detail"
	var de *errors.DomainError
	if errs.As(err, &de) {
		detailKey = de.MessageKey
	}

	p := NewProblem(c, mapping.problemType, mapping.status, mapping.titleKey, detailKey)
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(mapping.status, p)
}

// AbortUnauthorized escreve a resposta 401 e interrompe a cadeia
func AbortUnauthorized(c *gin.Context) {
	p := NewProblem(c, errors.ProblemTypeUnauthorized, http.StatusUnauthorized,
		"error.unauthorized.title", "error.unauthenticated")
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, p)
}

// RespondBindingError escreve a resposta de erro de validação de payload,
// extraindo os erros de campo do validator quando disponíveis
func RespondBindingError(c *gin.Context, err error) {
	base := NewProblem(c, errors.ProblemTypeValidation, http.StatusBadRequest,
		"error.validation.title", "error.validation.detail")

	response := ValidationProblem{DefaultProblem: *base}

	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		for _, fe := range verrs {
			response.Errors = append(response.Errors, FieldError{
				Field:   fe.Field(),
				Message: fe.Error(),
				Tag:     fe.Tag(),
			})
		}
	}

	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(http.StatusBadRequest, response)
}

// dateLayout é o formato aceito para datas em payloads (AAAA-MM-DD)
const dateLayout = "2006-01-02"

// ParseDate converte uma data opcional de payload para *time.Time
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
