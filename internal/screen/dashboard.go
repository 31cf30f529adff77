package screen

import (
	"context"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

// DashboardAPI is the slice of the API client the dashboard screen needs.
type DashboardAPI interface {
	DadosGerais(ctx context.Context) (*model.DadosGerais, error)
	ImoveisPorTipo(ctx context.Context) ([]model.ImoveisPorTipo, error)
	ClientesPorCidade(ctx context.Context) ([]model.ClientesPorCidade, error)
}

// Dashboard aggregates the three counters screens of the admin console.
type Dashboard struct {
	api  DashboardAPI
	sess *session.AdminStore
	log  *zap.Logger

	Gerais    model.DadosGerais
	PorTipo   []model.ImoveisPorTipo
	PorCidade []model.ClientesPorCidade
}

// NewDashboard constructs the screen.
func NewDashboard(api DashboardAPI, sess *session.AdminStore, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dashboard{api: api, sess: sess, log: log}
}

// Carrega fetches the three aggregates. The first failure wins and the
// affected field is left empty.
func (d *Dashboard) Carrega(ctx context.Context) error {
	if err := ExigeAdmin(d.sess); err != nil {
		return err
	}
	gerais, err := d.api.DadosGerais(ctx)
	if err != nil {
		d.Gerais = model.DadosGerais{}
		d.log.Error("load dashboard gerais", zap.Error(err))
		return err
	}
	d.Gerais = *gerais

	porTipo, err := d.api.ImoveisPorTipo(ctx)
	if err != nil {
		d.PorTipo = nil
		d.log.Error("load dashboard imoveisTipo", zap.Error(err))
		return err
	}
	d.PorTipo = porTipo

	porCidade, err := d.api.ClientesPorCidade(ctx)
	if err != nil {
		d.PorCidade = nil
		d.log.Error("load dashboard clientesCidade", zap.Error(err))
		return err
	}
	d.PorCidade = porCidade
	return nil
}
