package screen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/api"
	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

// AdminImoveisAPI is the slice of the API client the property admin screen needs.
type AdminImoveisAPI interface {
	ListImoveis(ctx context.Context) ([]model.Imovel, error)
	CreateImovel(ctx context.Context, token string, p api.ImovelPayload) (*model.Imovel, error)
	UpdateImovel(ctx context.Context, token string, id int, p api.ImovelPayload) (*model.Imovel, error)
	DeleteImovel(ctx context.Context, token string, id int) error
}

// AdminImoveis is the property CRUD screen of the admin console.
type AdminImoveis struct {
	api   AdminImoveisAPI
	sess  *session.AdminStore
	log   *zap.Logger
	itens []model.Imovel
}

// NewAdminImoveis constructs the screen.
func NewAdminImoveis(api AdminImoveisAPI, sess *session.AdminStore, log *zap.Logger) *AdminImoveis {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminImoveis{api: api, sess: sess, log: log}
}

// Itens returns the displayed collection.
func (s *AdminImoveis) Itens() []model.Imovel { return s.itens }

// Carrega fetches the full collection; on failure the collection is emptied.
func (s *AdminImoveis) Carrega(ctx context.Context) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	itens, err := s.api.ListImoveis(ctx)
	if err != nil {
		s.itens = nil
		s.log.Error("load imoveis", zap.Error(err))
		return err
	}
	s.itens = itens
	return nil
}

// valida rejects a payload before any request is made.
func validaImovel(p api.ImovelPayload) error {
	if p.Titulo == "" || p.Endereco == "" || p.Cidade == "" {
		return fmt.Errorf("título, endereço e cidade são obrigatórios: %w", errs.ErrValidation)
	}
	if !p.Tipo.Valido() {
		return fmt.Errorf("tipo de imóvel desconhecido %q: %w", p.Tipo, errs.ErrValidation)
	}
	if p.AluguelMensal <= 0 {
		return fmt.Errorf("aluguel mensal deve ser positivo: %w", errs.ErrValidation)
	}
	return nil
}

// Novo creates a property and appends it to the collection.
func (s *AdminImoveis) Novo(ctx context.Context, p api.ImovelPayload) (*model.Imovel, error) {
	if err := ExigeAdmin(s.sess); err != nil {
		return nil, err
	}
	if err := validaImovel(p); err != nil {
		return nil, err
	}
	im, err := s.api.CreateImovel(ctx, s.sess.Atual().Token, p)
	if err != nil {
		s.log.Warn("create imovel", zap.Error(err))
		return nil, err
	}
	s.itens = append(s.itens, *im)
	return im, nil
}

// Edita replaces a property. Unlike the other mutations this screen re-fetches
// the whole collection on success, so derived fields never go stale.
func (s *AdminImoveis) Edita(ctx context.Context, id int, p api.ImovelPayload) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	if err := validaImovel(p); err != nil {
		return err
	}
	if _, err := s.api.UpdateImovel(ctx, s.sess.Atual().Token, id, p); err != nil {
		s.log.Warn("update imovel", zap.Int("id", id), zap.Error(err))
		return err
	}
	return s.Carrega(ctx)
}

// Exclui deletes a property after the local level gate; on success the entry
// is filtered out of the collection, on failure the collection is untouched.
func (s *AdminImoveis) Exclui(ctx context.Context, id int) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	if !podeExcluir(s.sess) {
		return fmt.Errorf("você não tem permissão para excluir imóveis: %w", errs.ErrForbidden)
	}
	if err := s.api.DeleteImovel(ctx, s.sess.Atual().Token, id); err != nil {
		s.log.Warn("delete imovel", zap.Int("id", id), zap.Error(err))
		return err
	}
	mantidos := make([]model.Imovel, 0, len(s.itens))
	for _, im := range s.itens {
		if im.ID != id {
			mantidos = append(mantidos, im)
		}
	}
	s.itens = mantidos
	return nil
}
