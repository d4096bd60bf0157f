package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/auth"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/i18n"
)

// AuthUserContextKey é a chave usada para armazenar o usuário autenticado no contexto
const AuthUserContextKey = "auth_user"

// AuthUser é a identidade resolvida do usuário autenticado
type AuthUser struct {
	ID       string
	Name     string
	Email    string
	UserType entities.UserType
}

// AuthMiddleware valida o token Bearer e carrega o usuário da requisição
type AuthMiddleware struct {
	tokens   *auth.TokenManager
	userRepo repositories.UserRepository
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth exige um token Bearer válido e um usuário existente.
// O usuário resolvido fica disponível via CurrentUser.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		claims, err := m.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// O token pode sobreviver à conta. Recarregar garante que o usuário
		// ainda existe e que o user_type reflete o estado atual.
		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			abortUnauthorized(c)
			return
		}

		c.Set(AuthUserContextKey, &AuthUser{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			UserType: user.UserType,
		})

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado da requisição
func CurrentUser(c *gin.Context) *AuthUser {
	value, exists := c.Get(AuthUserContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*AuthUser)
	if !ok {
		return nil
	}

	return user
}

// abortUnauthorized escreve a resposta RFC 7807 de 401 e interrompe a cadeia.
// O middleware não usa o pacote dto para evitar ciclo de importação.
func abortUnauthorized(c *gin.Context) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewStatusProblem(http.StatusUnauthorized)
	p.Type = baseURL + errors.ProblemTypeUnauthorized
	p.Title = translate(c, "error.unauthorized.title")
	p.Detail = translate(c, "error.unauthenticated")
	p.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, p)
}

func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}
