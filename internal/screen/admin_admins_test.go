package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
)

type fakeAdminContasAPI struct {
	listOut []model.Admin
	listErr error

	deleteN   int
	deleteErr error

	nivelN   int
	nivelIn  int
	nivelErr error
}

func (f *fakeAdminContasAPI) ListAdmins(context.Context) ([]model.Admin, error) {
	return append([]model.Admin(nil), f.listOut...), f.listErr
}

func (f *fakeAdminContasAPI) DeleteAdmin(context.Context, string, string) error {
	f.deleteN++
	return f.deleteErr
}

func (f *fakeAdminContasAPI) AlteraNivelAdmin(_ context.Context, _ string, _ string, nivel int) error {
	f.nivelN++
	f.nivelIn = nivel
	return f.nivelErr
}

var equipe = []model.Admin{
	{ID: "a1", Nome: "Ana", Email: "ana@x.com", Nivel: 3},
	{ID: "a2", Nome: "Beto", Email: "beto@x.com", Nivel: 1},
}

func TestAdminContas_CarregaExigeNivel3(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := NewAdminContas(&fakeAdminContasAPI{listOut: equipe}, sessaoAdmin(2), nil)
	if err := s.Carrega(ctx); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("level 2 must not manage admins, got %v", err)
	}

	s = NewAdminContas(&fakeAdminContasAPI{listOut: equipe}, sessaoAdmin(3), nil)
	if err := s.Carrega(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}
	if len(s.Itens()) != 2 {
		t.Fatalf("got %d", len(s.Itens()))
	}
}

func TestAdminContas_AlteraNivelAtualizaEntrada(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeAdminContasAPI{listOut: equipe}
	s := NewAdminContas(fx, sessaoAdmin(3), nil)
	if err := s.Carrega(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}

	if err := s.AlteraNivel(ctx, "a2", 4); err != nil {
		t.Fatalf("altera: %v", err)
	}
	if fx.nivelIn != 4 {
		t.Fatalf("sent %d", fx.nivelIn)
	}
	for _, a := range s.Itens() {
		if a.ID == "a2" {
			if a.Nivel != 4 {
				t.Fatalf("entry not reconciled: %+v", a)
			}
			if a.Nome != "Beto" || a.Email != "beto@x.com" {
				t.Fatalf("unrelated fields must keep prior values: %+v", a)
			}
		}
	}
}

func TestAdminContas_AlteraNivelForaDaFaixa(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeAdminContasAPI{listOut: equipe}
	s := NewAdminContas(fx, sessaoAdmin(3), nil)

	for _, n := range []int{0, 6, -1} {
		if err := s.AlteraNivel(ctx, "a2", n); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("nivel %d must be rejected, got %v", n, err)
		}
	}
	if fx.nivelN != 0 {
		t.Fatalf("out-of-range levels must never reach the network")
	}
}

func TestAdminContas_Nivel1NaoExclui(t *testing.T) {
	t.Parallel()

	fx := &fakeAdminContasAPI{listOut: equipe}
	s := NewAdminContas(fx, sessaoAdmin(1), nil)

	if err := s.Exclui(context.Background(), "a1"); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
	if fx.deleteN != 0 {
		t.Fatalf("request must never be sent")
	}
}

func TestAdminContas_ExcluiReconcilia(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeAdminContasAPI{listOut: equipe}
	s := NewAdminContas(fx, sessaoAdmin(3), nil)
	if err := s.Carrega(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}

	if err := s.Exclui(ctx, "a2"); err != nil {
		t.Fatalf("exclui: %v", err)
	}
	if len(s.Itens()) != 1 || s.Itens()[0].ID != "a1" {
		t.Fatalf("reconciliation failed: %+v", s.Itens())
	}
}
