package screen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

// nivelGestaoAdmins unlocks administrator management.
const nivelGestaoAdmins = 3

// AdminContasAPI is the slice of the API client the admin-management screen needs.
type AdminContasAPI interface {
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	DeleteAdmin(ctx context.Context, token, id string) error
	AlteraNivelAdmin(ctx context.Context, token, id string, nivel int) error
}

// AdminContas is the administrator management screen.
type AdminContas struct {
	api   AdminContasAPI
	sess  *session.AdminStore
	log   *zap.Logger
	itens []model.Admin
}

// NewAdminContas constructs the screen.
func NewAdminContas(api AdminContasAPI, sess *session.AdminStore, log *zap.Logger) *AdminContas {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminContas{api: api, sess: sess, log: log}
}

// Itens returns the displayed accounts.
func (s *AdminContas) Itens() []model.Admin { return s.itens }

// Carrega fetches the accounts. Only level-3 admins may open this screen.
func (s *AdminContas) Carrega(ctx context.Context) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	if s.sess.Atual().Nivel < nivelGestaoAdmins {
		return fmt.Errorf("gestão de admins exige nível %d: %w", nivelGestaoAdmins, errs.ErrForbidden)
	}
	itens, err := s.api.ListAdmins(ctx)
	if err != nil {
		s.itens = nil
		s.log.Error("load admins", zap.Error(err))
		return err
	}
	s.itens = itens
	return nil
}

// Exclui deletes an administrator after the local level gate.
func (s *AdminContas) Exclui(ctx context.Context, id string) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	if !podeExcluir(s.sess) {
		return fmt.Errorf("você não tem permissão para excluir admins: %w", errs.ErrForbidden)
	}
	if err := s.api.DeleteAdmin(ctx, s.sess.Atual().Token, id); err != nil {
		s.log.Warn("delete admin", zap.String("id", id), zap.Error(err))
		return err
	}
	mantidos := make([]model.Admin, 0, len(s.itens))
	for _, a := range s.itens {
		if a.ID != id {
			mantidos = append(mantidos, a)
		}
	}
	s.itens = mantidos
	return nil
}

// AlteraNivel changes an account's level (1..5) and patches the in-memory
// entry on success, keeping every other field as it was.
func (s *AdminContas) AlteraNivel(ctx context.Context, id string, nivel int) error {
	if err := ExigeAdmin(s.sess); err != nil {
		return err
	}
	if nivel < 1 || nivel > 5 {
		return fmt.Errorf("nível deve ser entre 1 e 5: %w", errs.ErrValidation)
	}
	if err := s.api.AlteraNivelAdmin(ctx, s.sess.Atual().Token, id, nivel); err != nil {
		s.log.Warn("change admin nivel", zap.String("id", id), zap.Error(err))
		return err
	}
	for i := range s.itens {
		if s.itens[i].ID == id {
			s.itens[i].Nivel = nivel
		}
	}
	return nil
}
