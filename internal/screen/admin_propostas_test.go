package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/alugaaqui/aluga-cli/internal/model"
)

type fakeAdminPropostasAPI struct {
	listOut []model.Proposta
	listErr error

	respN   int
	respIn  string
	respErr error

	deleteN   int
	deleteErr error
}

func (f *fakeAdminPropostasAPI) ListPropostas(context.Context) ([]model.Proposta, error) {
	return append([]model.Proposta(nil), f.listOut...), f.listErr
}

func (f *fakeAdminPropostasAPI) RespondeProposta(_ context.Context, _ string, _ int, resposta string) error {
	f.respN++
	f.respIn = resposta
	return f.respErr
}

func (f *fakeAdminPropostasAPI) DeleteProposta(context.Context, string, int) error {
	f.deleteN++
	return f.deleteErr
}

func caixaDeEntrada() []model.Proposta {
	return []model.Proposta{
		{ID: 1, ClienteID: "7", ImovelID: 42, Descricao: "Ofereço R$1000"},
		{ID: 2, ClienteID: "8", ImovelID: 43, Descricao: "Tenho interesse"},
	}
}

func TestAdminPropostas_RespondeReconcilia(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeAdminPropostasAPI{listOut: caixaDeEntrada()}
	s := NewAdminPropostas(fx, sessaoAdmin(1), nil)
	if err := s.Carrega(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}

	if err := s.Responde(ctx, 1, "Proposta aprovada, parabéns"); err != nil {
		t.Fatalf("responde: %v", err)
	}
	if fx.respIn != "Proposta aprovada, parabéns" {
		t.Fatalf("sent %q", fx.respIn)
	}
	var alvo *model.Proposta
	for i := range s.Itens() {
		if s.Itens()[i].ID == 1 {
			alvo = &s.Itens()[i]
		}
	}
	if alvo == nil || alvo.Resposta == nil || *alvo.Resposta != "Proposta aprovada, parabéns" {
		t.Fatalf("entry not reconciled: %+v", alvo)
	}
	if alvo.Status() != model.StatusAprovada {
		t.Fatalf("derived status should flip to approved")
	}
	// the other entry is untouched
	for _, p := range s.Itens() {
		if p.ID == 2 && p.Resposta != nil {
			t.Fatalf("wrong entry mutated")
		}
	}
}

func TestAdminPropostas_RespostaEmBrancoNaoFazNada(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeAdminPropostasAPI{listOut: caixaDeEntrada()}
	s := NewAdminPropostas(fx, sessaoAdmin(1), nil)
	if err := s.Carrega(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}

	if err := s.Responde(ctx, 1, "   "); err != nil {
		t.Fatalf("blank response is a no-op, got %v", err)
	}
	if fx.respN != 0 {
		t.Fatalf("blank response must not reach the network")
	}
}

func TestAdminPropostas_ExcluiSemGateDeNivel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// level 1 may delete proposals; only imóveis/admins carry the local gate
	fx := &fakeAdminPropostasAPI{listOut: caixaDeEntrada()}
	s := NewAdminPropostas(fx, sessaoAdmin(1), nil)
	if err := s.Carrega(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}

	if err := s.Exclui(ctx, 1); err != nil {
		t.Fatalf("exclui: %v", err)
	}
	if len(s.Itens()) != 1 || s.Itens()[0].ID != 2 {
		t.Fatalf("reconciliation failed: %+v", s.Itens())
	}
}

func TestAdminPropostas_FalhaExcluiNaoMexe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeAdminPropostasAPI{
		listOut:   caixaDeEntrada(),
		deleteErr: errors.New("api down"),
	}
	s := NewAdminPropostas(fx, sessaoAdmin(1), nil)
	if err := s.Carrega(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}

	if err := s.Exclui(ctx, 1); err == nil {
		t.Fatalf("want error")
	}
	if len(s.Itens()) != 2 {
		t.Fatalf("failed delete must leave the collection untouched")
	}
}
