package constants

// Papéis de sessão do sistema.
const (
	RoleAdmin   = "admin"
	RoleStudent = "aluno"
)

// Mensagens padrão dos guards de acesso.
const (
	MsgAdminOnly  = "Você precisa ser administrador para acessar esta página!"
	MsgLoginFirst = "Faça login para continuar."
)
