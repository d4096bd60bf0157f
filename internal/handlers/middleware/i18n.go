package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/condogestor/condoasset-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma resolvido da requisição
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o serviço de tradução no contexto do Gin
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware resolve o idioma de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage resolve o idioma na ordem: query ?lang, header
// Accept-Language, idioma padrão do serviço. O resultado e o próprio
// serviço ficam no contexto para os handlers e para o pacote dto.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage percorre o header na ordem em que os idiomas
// aparecem e retorna o primeiro suportado. Os pesos ;q= são ignorados,
// e um idioma com região cai para a variante base (pt-BR para pt)
// quando só a base está no catálogo.
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		if idx := strings.Index(lang, "-"); idx != -1 {
			if base := lang[:idx]; m.i18nService.IsLanguageSupported(base) {
				return base
			}
		}
	}

	return ""
}
