package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
)

// Credenciais is the login body shared by cliente and admin logins.
type Credenciais struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// NovoCliente is the registration body for POST /clientes.
type NovoCliente struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Cidade string `json:"cidade,omitempty"`
}

// GetCliente fetches one cliente record, used by session rehydration.
func (c *Client) GetCliente(ctx context.Context, id string) (*model.Cliente, error) {
	var out model.Cliente
	err := c.do(ctx, http.MethodGet, "/clientes/"+id, "", nil, &out, http.StatusOK)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, fmt.Errorf("cliente %s: %w", id, errs.ErrNotFound)
		}
		return nil, err
	}
	return &out, nil
}

// CadastraCliente registers a new cliente.
func (c *Client) CadastraCliente(ctx context.Context, nc NovoCliente) (*model.Cliente, error) {
	var out model.Cliente
	if err := c.do(ctx, http.MethodPost, "/clientes", "", nc, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginCliente authenticates a cliente and returns the record.
func (c *Client) LoginCliente(ctx context.Context, cred Credenciais) (*model.Cliente, error) {
	var out model.Cliente
	if err := c.do(ctx, http.MethodPost, "/clientes/login", "", cred, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginAdmin authenticates an administrator and returns the record plus token.
func (c *Client) LoginAdmin(ctx context.Context, cred Credenciais) (*model.AdminLogado, error) {
	var out model.AdminLogado
	if err := c.do(ctx, http.MethodPost, "/admins/login", "", cred, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAdmins fetches every administrator account.
func (c *Client) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var out []model.Admin
	if err := c.do(ctx, http.MethodGet, "/admins", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAdmin removes an administrator (bearer required).
func (c *Client) DeleteAdmin(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admins/"+id, token, nil, nil, http.StatusOK)
}

// AlteraNivelAdmin changes an administrator's access level (bearer required).
func (c *Client) AlteraNivelAdmin(ctx context.Context, token, id string, nivel int) error {
	path := fmt.Sprintf("/admins/nivel/%s/%d", id, nivel)
	return c.do(ctx, http.MethodPatch, path, token, nil, nil, http.StatusOK)
}
