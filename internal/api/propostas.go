package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alugaaqui/aluga-cli/internal/model"
)

// NovaProposta is the submission body for POST /propostas. The cliente id goes
// in the body; the endpoint is unauthenticated.
type NovaProposta struct {
	ClienteID string `json:"clienteId"`
	ImovelID  int    `json:"imovelId"`
	Descricao string `json:"descricao"`
}

// CriaProposta submits a rental proposal.
func (c *Client) CriaProposta(ctx context.Context, p NovaProposta) (*model.Proposta, error) {
	var out model.Proposta
	if err := c.do(ctx, http.MethodPost, "/propostas", "", p, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPropostas fetches every proposal (admin screen).
func (c *Client) ListPropostas(ctx context.Context) ([]model.Proposta, error) {
	var out []model.Proposta
	if err := c.do(ctx, http.MethodGet, "/propostas", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// PropostasDoCliente fetches one cliente's proposals.
func (c *Client) PropostasDoCliente(ctx context.Context, clienteID string) ([]model.Proposta, error) {
	var out []model.Proposta
	if err := c.do(ctx, http.MethodGet, "/propostas/"+clienteID, "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// RespondeProposta sets the response text of a proposal (bearer required).
func (c *Client) RespondeProposta(ctx context.Context, token string, id int, resposta string) error {
	body := map[string]string{"resposta": resposta}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/propostas/%d", id), token, body, nil, http.StatusOK)
}

// DeleteProposta removes a proposal (bearer required).
func (c *Client) DeleteProposta(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/propostas/%d", id), token, nil, nil, http.StatusOK)
}
