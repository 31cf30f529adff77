package api

import (
	"context"
	"net/http"

	"github.com/alugaaqui/aluga-cli/internal/model"
)

// DadosGerais fetches the headline counters.
func (c *Client) DadosGerais(ctx context.Context) (*model.DadosGerais, error) {
	var out model.DadosGerais
	if err := c.do(ctx, http.MethodGet, "/dashboard/gerais", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImoveisPorTipo fetches the property count per category.
func (c *Client) ImoveisPorTipo(ctx context.Context) ([]model.ImoveisPorTipo, error) {
	var out []model.ImoveisPorTipo
	if err := c.do(ctx, http.MethodGet, "/dashboard/imoveisTipo", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ClientesPorCidade fetches the cliente count per city.
func (c *Client) ClientesPorCidade(ctx context.Context) ([]model.ClientesPorCidade, error) {
	var out []model.ClientesPorCidade
	if err := c.do(ctx, http.MethodGet, "/dashboard/clientesCidade", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
