// Command aluga-admin is the administrative console of the Aluga Aqui API:
// property, administrator and proposal management plus the dashboard.
//
// The console is interactive; the admin session lives in memory and dies with
// the process, so every run starts at the login screen.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/api"
	"github.com/alugaaqui/aluga-cli/internal/config"
	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/screen"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// console wires the admin screens over one shared session store.
type console struct {
	cfg  *config.Config
	log  *zap.Logger
	api  *api.Client
	sess *session.AdminStore
	in   *bufio.Scanner

	imoveis   *screen.AdminImoveis
	contas    *screen.AdminContas
	propostas *screen.AdminPropostas
	dash      *screen.Dashboard

	expiraEm time.Time // best-effort, zero when the token said nothing
}

func main() {
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	cli := api.New(cfg.APIURL, cfg.HTTPTimeout, logger)
	sess := session.NewAdminStore()

	c := &console{
		cfg:       cfg,
		log:       logger,
		api:       cli,
		sess:      sess,
		in:        bufio.NewScanner(os.Stdin),
		imoveis:   screen.NewAdminImoveis(cli, sess, logger),
		contas:    screen.NewAdminContas(cli, sess, logger),
		propostas: screen.NewAdminPropostas(cli, sess, logger),
		dash:      screen.NewDashboard(cli, sess, logger),
	}

	fmt.Printf("Aluga Aqui — console administrativo %s (%s)\n", version, buildDate)
	fmt.Printf("API: %s\n", cfg.APIURL)
	c.loop()
}

func (c *console) loop() {
	c.ajuda()
	for {
		fmt.Print("admin> ")
		if !c.in.Scan() {
			return
		}
		campos := strings.Fields(c.in.Text())
		if len(campos) == 0 {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.HTTPTimeout)
		c.executa(ctx, campos[0], campos[1:])
		cancel()
	}
}

func (c *console) executa(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "ajuda", "help":
		c.ajuda()
	case "login":
		c.doLogin(ctx)
	case "logout":
		c.sess.Logout()
		c.expiraEm = time.Time{}
		fmt.Println("Sessão encerrada.")
	case "sair", "exit", "quit":
		os.Exit(0)

	case "dashboard":
		c.guardado(ctx, c.doDashboard)
	case "imoveis":
		c.guardado(ctx, c.doImoveis)
	case "novo":
		c.guardado(ctx, c.doNovoImovel)
	case "editar":
		c.guardadoID(ctx, args, c.doEditarImovel)
	case "excluir-imovel":
		c.guardadoID(ctx, args, c.doExcluirImovel)

	case "admins":
		c.guardado(ctx, c.doAdmins)
	case "nivel":
		c.guardado(ctx, func(ctx context.Context) error { return c.doNivel(ctx, args) })
	case "excluir-admin":
		c.guardado(ctx, func(ctx context.Context) error { return c.doExcluirAdmin(ctx, args) })

	case "propostas":
		c.guardado(ctx, c.doPropostas)
	case "responder":
		c.guardadoID(ctx, args, c.doResponder)
	case "excluir-proposta":
		c.guardadoID(ctx, args, c.doExcluirProposta)

	default:
		fmt.Printf("comando desconhecido: %s (tente 'ajuda')\n", cmd)
	}
}

func (c *console) ajuda() {
	fmt.Print(`Comandos:
  login | logout | sair
  dashboard
  imoveis | novo | editar <id> | excluir-imovel <id>
  admins | nivel <id> <1-5> | excluir-admin <id>
  propostas | responder <id> | excluir-proposta <id>
`)
}

// guardado runs fn behind the route guard: without a session the console
// bounces to the login screen first.
func (c *console) guardado(ctx context.Context, fn func(context.Context) error) {
	if err := screen.ExigeAdmin(c.sess); err != nil {
		fmt.Println("Área restrita. Faça login.")
		if !c.doLogin(ctx) {
			return
		}
	}
	if !c.expiraEm.IsZero() && time.Now().After(c.expiraEm) {
		fmt.Println("Atenção: o token pode ter expirado; se a operação falhar, faça login novamente.")
	}
	if err := fn(ctx); err != nil {
		c.mostraErro(err)
	}
}

// guardadoID is guardado for commands taking a numeric id argument.
func (c *console) guardadoID(ctx context.Context, args []string, fn func(context.Context, int) error) {
	if len(args) < 1 {
		fmt.Println("informe o id")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("id inválido")
		return
	}
	c.guardado(ctx, func(ctx context.Context) error { return fn(ctx, id) })
}

func (c *console) mostraErro(err error) {
	var se *api.StatusError
	switch {
	case errors.As(err, &se):
		fmt.Printf("Erro da API (%d): %s\n", se.Code, se.Message)
	case errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrNotFound):
		fmt.Println("Erro:", err)
	case errors.Is(err, errs.ErrUnauthorized):
		fmt.Println("Área restrita. Faça login.")
	default:
		fmt.Println("Erro de conexão com o servidor")
		c.log.Error("command failed", zap.Error(err))
	}
}

// doLogin authenticates and fills the session store. The token's exp claim is
// read only for the expiry diagnostic; a parse failure leaves it unknown.
func (c *console) doLogin(ctx context.Context) bool {
	email := c.pergunta("E-mail")
	senha := c.pergunta("Senha")
	adm, err := c.api.LoginAdmin(ctx, api.Credenciais{Email: email, Senha: senha})
	if err != nil {
		fmt.Println("Erro... Login ou senha incorretos")
		c.log.Warn("admin login failed", zap.Error(err))
		return false
	}
	c.sess.Login(*adm)

	c.expiraEm = time.Time{}
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(adm.Token, &claims,
		func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt != nil {
		c.expiraEm = claims.ExpiresAt.Time
		fmt.Printf("Olá, %s (nível %d). Sessão expira às %s.\n",
			adm.Nome, adm.Nivel, c.expiraEm.Local().Format("15:04"))
	} else {
		fmt.Printf("Olá, %s (nível %d).\n", adm.Nome, adm.Nivel)
	}
	return true
}
