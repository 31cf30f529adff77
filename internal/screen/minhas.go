package screen

import (
	"context"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

// MinhasAPI is the slice of the API client the "my proposals" screen needs.
type MinhasAPI interface {
	PropostasDoCliente(ctx context.Context, clienteID string) ([]model.Proposta, error)
}

// Minhas lists the logged-in cliente's proposals with their derived status.
type Minhas struct {
	api   MinhasAPI
	sess  *session.ClienteStore
	log   *zap.Logger
	itens []model.Proposta
}

// NewMinhas constructs the screen.
func NewMinhas(api MinhasAPI, sess *session.ClienteStore, log *zap.Logger) *Minhas {
	if log == nil {
		log = zap.NewNop()
	}
	return &Minhas{api: api, sess: sess, log: log}
}

// Itens returns the displayed proposals.
func (m *Minhas) Itens() []model.Proposta { return m.itens }

// Carrega fetches the cliente's proposals. Requires an active session; on
// fetch failure the list becomes empty.
func (m *Minhas) Carrega(ctx context.Context) error {
	if !m.sess.Ativa() {
		return errs.ErrSemSessao
	}
	itens, err := m.api.PropostasDoCliente(ctx, m.sess.Atual().ID)
	if err != nil {
		m.itens = nil
		m.log.Error("load propostas do cliente", zap.Error(err))
		return err
	}
	m.itens = itens
	return nil
}
