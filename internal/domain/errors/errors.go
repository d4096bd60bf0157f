package errors

import "errors"

// Kind classifica um erro de domínio. Os handlers mapeiam cada kind para o
// status HTTP e o tipo de problema RFC 7807 correspondente.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// DomainError representa um erro de domínio com um kind e uma message key.
// Nota: MessageKey é um código de erro (message ID para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
type DomainError struct {
	Kind       Kind
	MessageKey string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.MessageKey + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.MessageKey
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// New cria um novo DomainError
func New(kind Kind, messageKey string) *DomainError {
	return &DomainError{Kind: kind, MessageKey: messageKey}
}

// Wrap cria um DomainError embrulhando a causa original
func Wrap(kind Kind, messageKey string, err error) *DomainError {
	return &DomainError{Kind: kind, MessageKey: messageKey, Err: err}
}

// KindOf extrai o Kind de um erro; erros desconhecidos são KindInternal
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Business errors
var (
	ErrImovelNotFound  = New(KindNotFound, "error.imovel_not_found")
	ErrAtivoNotFound   = New(KindNotFound, "error.ativo_not_found")
	ErrUsuarioNotFound = New(KindNotFound, "error.usuario_not_found")

	ErrPrestadorSemAcesso = New(KindForbidden, "error.prestador_forbidden")
	ErrSemPermissao       = New(KindForbidden, "error.ownership_forbidden")
	ErrAtivoComChamados   = New(KindForbidden, "error.ativo_has_chamados")

	ErrCnpjEmUso         = New(KindConflict, "error.cnpj_in_use")
	ErrEmailEmUso        = New(KindConflict, "error.email_in_use")
	ErrCpfCnpjEmUso      = New(KindConflict, "error.cpf_cnpj_in_use")
	ErrWhatsappEmUso     = New(KindConflict, "error.whatsapp_in_use")
	ErrImovelComVinculos = New(KindConflict, "error.imovel_has_dependents")

	ErrSenhasNaoCoincidem   = New(KindValidation, "error.password_mismatch")
	ErrCnpjInvalido         = New(KindValidation, "error.invalid_cnpj")
	ErrCredenciaisInvalidas = New(KindUnauthorized, "error.invalid_credentials")
	ErrSenhaAtualIncorreta  = New(KindUnauthorized, "error.current_password_incorrect")
	ErrNaoAutenticado       = New(KindUnauthorized, "error.unauthenticated")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)
