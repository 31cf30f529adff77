package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/alugaaqui/aluga-cli/internal/api"
	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
)

// CadastroAPI is the slice of the API client the registration screen needs.
type CadastroAPI interface {
	CadastraCliente(ctx context.Context, nc api.NovoCliente) (*model.Cliente, error)
}

// Cadastro is the cliente registration form.
type Cadastro struct {
	api CadastroAPI
}

// NewCadastro constructs the registration screen.
func NewCadastro(api CadastroAPI) *Cadastro { return &Cadastro{api: api} }

// Registra validates locally (password confirmation, required fields) and
// posts the new cliente. Validation failures never reach the network.
func (c *Cadastro) Registra(ctx context.Context, nome, email, cidade, senha, senha2 string) (*model.Cliente, error) {
	if strings.TrimSpace(nome) == "" || strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("nome e e-mail são obrigatórios: %w", errs.ErrValidation)
	}
	if senha == "" {
		return nil, fmt.Errorf("informe uma senha: %w", errs.ErrValidation)
	}
	if senha != senha2 {
		return nil, fmt.Errorf("senha e confirmação não conferem: %w", errs.ErrValidation)
	}
	return c.api.CadastraCliente(ctx, api.NovoCliente{
		Nome:   strings.TrimSpace(nome),
		Email:  strings.TrimSpace(email),
		Senha:  senha,
		Cidade: strings.TrimSpace(cidade),
	})
}
