package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
)

// ImovelPayload is the create/update body for an imovel. Optional fields carry
// omitempty so blanks are dropped from the JSON and server defaults apply.
type ImovelPayload struct {
	Titulo        string           `json:"titulo"`
	Descricao     string           `json:"descricao,omitempty"`
	Endereco      string           `json:"endereco"`
	Cidade        string           `json:"cidade"`
	Bairro        string           `json:"bairro,omitempty"`
	CEP           string           `json:"cep,omitempty"`
	Tipo          model.TipoImovel `json:"tipo"`
	AluguelMensal float64          `json:"aluguelMensal"`
	Disponivel    bool             `json:"disponivel"`
	Fotos         string           `json:"fotos,omitempty"`
}

// ListImoveis fetches the full property collection.
func (c *Client) ListImoveis(ctx context.Context) ([]model.Imovel, error) {
	var out []model.Imovel
	if err := c.do(ctx, http.MethodGet, "/imoveis", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetImovel fetches one property. Unknown ids map to errs.ErrNotFound.
func (c *Client) GetImovel(ctx context.Context, id int) (*model.Imovel, error) {
	var out model.Imovel
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/imoveis/%d", id), "", nil, &out, http.StatusOK)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, fmt.Errorf("imovel %d: %w", id, errs.ErrNotFound)
		}
		return nil, err
	}
	return &out, nil
}

// CreateImovel creates a property (bearer required).
func (c *Client) CreateImovel(ctx context.Context, token string, p ImovelPayload) (*model.Imovel, error) {
	var out model.Imovel
	if err := c.do(ctx, http.MethodPost, "/imoveis", token, p, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateImovel replaces a property via PUT (bearer required).
func (c *Client) UpdateImovel(ctx context.Context, token string, id int, p ImovelPayload) (*model.Imovel, error) {
	var out model.Imovel
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/imoveis/%d", id), token, p, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteImovel removes a property (bearer required).
func (c *Client) DeleteImovel(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/imoveis/%d", id), token, nil, nil, http.StatusOK)
}
