package entities

// UserType representa o tipo de um usuário no sistema
type UserType string

const (
	UserTypeSindicoResidente    UserType = "sindico_residente"
	UserTypeSindicoProfissional UserType = "sindico_profissional"
	UserTypeAdminImoveis        UserType = "admin_imoveis"
	UserTypePrestador           UserType = "prestador"
)

// IsValid verifica se o tipo de usuário é um dos tipos conhecidos
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeSindicoResidente, UserTypeSindicoProfissional, UserTypeAdminImoveis, UserTypePrestador:
		return true
	}
	return false
}

// IsSindico verifica se o tipo exige campos de mandato no cadastro
func (t UserType) IsSindico() bool {
	return t == UserTypeSindicoResidente || t == UserTypeSindicoProfissional
}

// IsEmpresa verifica se o tipo exige dados de empresa no cadastro
func (t UserType) IsEmpresa() bool {
	return t == UserTypeAdminImoveis || t == UserTypePrestador
}

// RegimeTributario representa o regime tributário de uma empresa
type RegimeTributario string

const (
	RegimeSimplesNacional RegimeTributario = "simples_nacional"
	RegimeLucroPresumido  RegimeTributario = "lucro_presumido"
	RegimeLucroReal       RegimeTributario = "lucro_real"
)

// IsValid verifica se o regime tributário é conhecido
func (r RegimeTributario) IsValid() bool {
	switch r {
	case RegimeSimplesNacional, RegimeLucroPresumido, RegimeLucroReal:
		return true
	}
	return false
}
