package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
)

type fakeVitrineAPI struct {
	calls int
	out   []model.Imovel
	err   error
}

func (f *fakeVitrineAPI) ListImoveis(context.Context) ([]model.Imovel, error) {
	f.calls++
	return append([]model.Imovel(nil), f.out...), f.err
}

var acervo = []model.Imovel{
	{ID: 1, Titulo: "Apto no Centro", Cidade: "Pelotas", Tipo: model.TipoApartamento},
	{ID: 2, Titulo: "Casa com pátio", Cidade: "Rio Grande", Tipo: model.TipoCasa},
	{ID: 3, Titulo: "Kitnet mobiliada", Cidade: "Pelotas", Tipo: model.TipoKitnet},
	{ID: 4, Titulo: "Galpão logístico", Cidade: "Capão do Leão", Tipo: model.TipoGalpao},
}

func TestVitrine_PesquisaCurtaNaoConsultaAPI(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeVitrineAPI{out: acervo}
	v := NewVitrine(fx, nil)
	if err := v.CarregaTudo(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}
	antes := fx.calls

	err := v.Pesquisa(ctx, "a")
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("short term must be a validation error, got %v", err)
	}
	if fx.calls != antes {
		t.Fatalf("short term must not hit the network")
	}
	if len(v.Itens()) != len(acervo) {
		t.Fatalf("collection must be unchanged, got %d", len(v.Itens()))
	}
}

func TestVitrine_PesquisaFiltraPorTituloCidadeTipo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeVitrineAPI{out: acervo}
	v := NewVitrine(fx, nil)

	// matches cidade "Pelotas" on 1 and 3, case-insensitive
	if err := v.Pesquisa(ctx, "pelotas"); err != nil {
		t.Fatalf("pesquisa: %v", err)
	}
	got := v.Itens()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("filter must keep server order, got %+v", got)
	}

	// matches the tipo field
	if err := v.Pesquisa(ctx, "galpao"); err != nil {
		t.Fatalf("pesquisa: %v", err)
	}
	if len(v.Itens()) != 1 || v.Itens()[0].ID != 4 {
		t.Fatalf("tipo match failed: %+v", v.Itens())
	}

	// matches the titulo field, substring in the middle
	if err := v.Pesquisa(ctx, "pátio"); err != nil {
		t.Fatalf("pesquisa: %v", err)
	}
	if len(v.Itens()) != 1 || v.Itens()[0].ID != 2 {
		t.Fatalf("titulo match failed: %+v", v.Itens())
	}

	// no match
	if err := v.Pesquisa(ctx, "cobertura"); err != nil {
		t.Fatalf("pesquisa: %v", err)
	}
	if len(v.Itens()) != 0 {
		t.Fatalf("expected no matches, got %+v", v.Itens())
	}
}

func TestVitrine_LimpaFiltroRecarregaTudo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeVitrineAPI{out: acervo}
	v := NewVitrine(fx, nil)
	if err := v.Pesquisa(ctx, "kitnet"); err != nil {
		t.Fatalf("pesquisa: %v", err)
	}
	if len(v.Itens()) != 1 {
		t.Fatalf("setup: %+v", v.Itens())
	}

	if err := v.LimpaFiltro(ctx); err != nil {
		t.Fatalf("limpa: %v", err)
	}
	if v.Termo() != "" {
		t.Fatalf("termo must be cleared")
	}
	if len(v.Itens()) != len(acervo) {
		t.Fatalf("full collection expected, got %d", len(v.Itens()))
	}
}

func TestVitrine_FalhaEsvaziaColecao(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := &fakeVitrineAPI{out: acervo}
	v := NewVitrine(fx, nil)
	if err := v.CarregaTudo(ctx); err != nil {
		t.Fatalf("carrega: %v", err)
	}

	fx.err = errors.New("api down")
	if err := v.CarregaTudo(ctx); err == nil {
		t.Fatalf("want error")
	}
	if len(v.Itens()) != 0 {
		t.Fatalf("failed fetch must empty the collection, not leave it stale")
	}
}
