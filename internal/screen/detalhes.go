package screen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/api"
	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

// DetalhesAPI is the slice of the API client the detail screen needs.
type DetalhesAPI interface {
	GetImovel(ctx context.Context, id int) (*model.Imovel, error)
	CriaProposta(ctx context.Context, p api.NovaProposta) (*model.Proposta, error)
}

// Detalhes is the property detail screen with the proposal form.
type Detalhes struct {
	api    DetalhesAPI
	sess   *session.ClienteStore
	log    *zap.Logger
	imovel *model.Imovel
}

// NewDetalhes constructs the detail screen.
func NewDetalhes(api DetalhesAPI, sess *session.ClienteStore, log *zap.Logger) *Detalhes {
	if log == nil {
		log = zap.NewNop()
	}
	return &Detalhes{api: api, sess: sess, log: log}
}

// Imovel returns the loaded property, nil while loading or after a failure.
func (d *Detalhes) Imovel() *model.Imovel { return d.imovel }

// Carrega fetches one property. Unknown ids surface errs.ErrNotFound.
func (d *Detalhes) Carrega(ctx context.Context, id int) error {
	im, err := d.api.GetImovel(ctx, id)
	if err != nil {
		d.imovel = nil
		d.log.Error("load imovel", zap.Int("id", id), zap.Error(err))
		return err
	}
	d.imovel = im
	return nil
}

// EnviaProposta submits a proposal for the loaded property on behalf of the
// logged-in cliente. Reachable only with an active cliente session; the
// server is not the enforcer of that gate here.
func (d *Detalhes) EnviaProposta(ctx context.Context, texto string) error {
	if !d.sess.Ativa() {
		return errs.ErrSemSessao
	}
	if d.imovel == nil {
		return fmt.Errorf("nenhum imóvel carregado: %w", errs.ErrValidation)
	}
	if strings.TrimSpace(texto) == "" {
		return fmt.Errorf("descreva sua proposta: %w", errs.ErrValidation)
	}
	_, err := d.api.CriaProposta(ctx, api.NovaProposta{
		ClienteID: d.sess.Atual().ID,
		ImovelID:  d.imovel.ID,
		Descricao: texto,
	})
	if err != nil {
		d.log.Warn("send proposta", zap.Int("imovel", d.imovel.ID), zap.Error(err))
		return err
	}
	return nil
}
