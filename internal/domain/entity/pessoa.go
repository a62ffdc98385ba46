package entity

import "time"

// Tipos de Pessoa.
const (
	PessoaCliente    = "cliente"
	PessoaFornecedor = "fornecedor"
)

// Pessoa é o cadastro unificado de clientes e fornecedores, distinguidos por Tipo.
type Pessoa struct {
	ID          string
	EmpresaID   string
	Tipo        string // cliente, fornecedor
	Nome        string
	RazaoSocial string
	Documento   string // CPF ou CNPJ, apenas dígitos
	Email       string
	Telefone    string
	Endereco    string
	Cidade      string
	UF          string
	CEP         string
	CategoriaID *string // só para fornecedores
	Observacoes string
	Ativo       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFornecedor informa se a pessoa é do lado fornecedor.
func (p *Pessoa) IsFornecedor() bool { return p.Tipo == PessoaFornecedor }

// ValidTipoPessoa valida o tipo informado.
func ValidTipoPessoa(tipo string) bool {
	return tipo == PessoaCliente || tipo == PessoaFornecedor
}
