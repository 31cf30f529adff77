package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

// AdminPropostasAPI is the slice of the API client the proposal screen needs.
type AdminPropostasAPI interface {
	ListPropostas(ctx context.Context) ([]model.Proposta, error)
	RespondeProposta(ctx context.Context, token string, id int, resposta string) error
	DeleteProposta(ctx context.Context, token string, id int) error
}

// AdminPropostas is the proposal management screen.
type AdminPropostas struct {
	api   AdminPropostasAPI
	sess  *session.AdminStore
	log   *zap.Logger
	itens []model.Proposta
}

// NewAdminPropostas constructs the screen.
func NewAdminPropostas(api AdminPropostasAPI, sess *session.AdminStore, log *zap.Logger) *AdminPropostas {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminPropostas{api: api, sess: sess, log: log}
}

// Itens returns the displayed proposals.
func (s *AdminPropostas) Itens() []model.Proposta { return s.itens }

// Carrega fetches every proposal; on failure the collection is emptied.
func (s *AdminPropostas) Carrega(ctx context.Context) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	itens, err := s.api.ListPropostas(ctx)
	if err != nil {
		s.itens = nil
		s.log.Error("load propostas", zap.Error(err))
		return err
	}
	s.itens = itens
	return nil
}

// Responde sets the response text of a proposal. Blank text is a no-op (the
// admin cancelled the prompt); on success the in-memory entry gets the new
// response, everything else untouched.
func (s *AdminPropostas) Responde(ctx context.Context, id int, texto string) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	if strings.TrimSpace(texto) == "" {
		return nil
	}
	if err := s.api.RespondeProposta(ctx, s.sess.Atual().Token, id, texto); err != nil {
		s.log.Warn("respond proposta", zap.Int("id", id), zap.Error(err))
		return err
	}
	for i := range s.itens {
		if s.itens[i].ID == id {
			resp := texto
			s.itens[i].Resposta = &resp
		}
	}
	return nil
}

// Exclui deletes a proposal; on success the entry is filtered out, on failure
// the collection is untouched. Proposals carry no level gate, only the
// console-side confirmation.
func (s *AdminPropostas) Exclui(ctx context.Context, id int) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	if err := s.api.DeleteProposta(ctx, s.sess.Atual().Token, id); err != nil {
		s.log.Warn("delete proposta", zap.Int("id", id), zap.Error(err))
		return err
	}
	mantidas := make([]model.Proposta, 0, len(s.itens))
	for _, p := range s.itens {
		if p.ID != id {
			mantidas = append(mantidas, p)
		}
	}
	s.itens = mantidas
	return nil
}
