// Package screen implements the application screens: each owns one in-memory
// collection fetched from the API and reconciled after mutations. Screens
// return errors; presentation (notices, prompts, confirmation) belongs to the
// calling front end.
package screen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
)

// VitrineAPI is the slice of the API client the listing screen needs.
type VitrineAPI interface {
	ListImoveis(ctx context.Context) ([]model.Imovel, error)
}

// Vitrine is the public listing screen: full collection plus a local
// free-text filter over titulo/cidade/tipo.
type Vitrine struct {
	api   VitrineAPI
	log   *zap.Logger
	itens []model.Imovel
	termo string
}

// NewVitrine constructs the listing screen.
func NewVitrine(api VitrineAPI, log *zap.Logger) *Vitrine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Vitrine{api: api, log: log}
}

// Itens returns the currently displayed collection.
func (v *Vitrine) Itens() []model.Imovel { return v.itens }

// Termo returns the active search term, empty when unfiltered.
func (v *Vitrine) Termo() string { return v.termo }

// CarregaTudo fetches the full collection. On failure the displayed
// collection becomes empty rather than stale.
func (v *Vitrine) CarregaTudo(ctx context.Context) error {
	itens, err := v.api.ListImoveis(ctx)
	if err != nil {
		v.itens = nil
		v.log.Error("load imoveis", zap.Error(err))
		return err
	}
	v.itens = itens
	return nil
}

// Pesquisa re-fetches the collection and keeps the entries whose titulo,
// cidade or tipo contains termo (case-insensitive, any field qualifies).
// Terms shorter than 2 characters are rejected before any request and the
// current collection is left untouched.
func (v *Vitrine) Pesquisa(ctx context.Context, termo string) error {
	if len([]rune(termo)) < 2 {
		return fmt.Errorf("informe, no mínimo, 2 caracteres: %w", errs.ErrValidation)
	}
	itens, err := v.api.ListImoveis(ctx)
	if err != nil {
		v.itens = nil
		v.log.Error("search imoveis", zap.String("termo", termo), zap.Error(err))
		return err
	}
	alvo := strings.ToLower(termo)
	filtrados := make([]model.Imovel, 0, len(itens))
	for _, im := range itens {
		if strings.Contains(strings.ToLower(im.Titulo), alvo) ||
			strings.Contains(strings.ToLower(im.Cidade), alvo) ||
			strings.Contains(strings.ToLower(string(im.Tipo)), alvo) {
			filtrados = append(filtrados, im)
		}
	}
	v.termo = termo
	v.itens = filtrados
	return nil
}

// LimpaFiltro clears the search term and reloads the full collection.
func (v *Vitrine) LimpaFiltro(ctx context.Context) error {
	v.termo = ""
	return v.CarregaTudo(ctx)
}
