// Command aluga is the terminal front end of the Aluga Aqui listings API for
// visitors and clientes.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/api"
	"github.com/alugaaqui/aluga-cli/internal/bridge"
	"github.com/alugaaqui/aluga-cli/internal/config"
	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/screen"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `aluga CLI
Usage:
  aluga <cmd> [args]

Commands:
  versao
  listar                                        (todos os imóveis)
  buscar    -termo <texto>                      (filtra por título/cidade/tipo)
  detalhes  -id <n>
  cadastro  -nome <n> -email <e> -senha <s> -senha2 <s> [-cidade <c>]
  login     -email <e> -senha <s> [-manter]     (-manter salva a sessão)
  logout
  proposta  -imovel <n> -texto <descrição>      (exige login)
  minhas                                        (suas propostas)
`)
	os.Exit(2)
}

// app bundles everything a command needs.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	api    *api.Client
	sess   *session.ClienteStore
	bridge *bridge.Bridge
}

// main dispatches subcommands against the configured API.
func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	cli := api.New(cfg.APIURL, cfg.HTTPTimeout, logger)
	sess := session.NewClienteStore()
	a := &app{
		cfg:    cfg,
		log:    logger,
		api:    cli,
		sess:   sess,
		bridge: bridge.New(cfg.ConfigDir, cli, sess, logger),
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	// Rehydrate the cliente session from the durable id, silently, but only
	// for commands that read the session. Login/logout manage the durable
	// id themselves.
	if leSessao(cmd) {
		a.bridge.Reidrata(ctx)
	}

	switch cmd {
	case "versao":
		fmt.Printf("aluga %s (%s)\n", version, buildDate)
	case "listar":
		a.cmdListar(ctx)
	case "buscar":
		a.cmdBuscar(ctx, args)
	case "detalhes":
		a.cmdDetalhes(ctx, args)
	case "cadastro":
		a.cmdCadastro(ctx, args)
	case "login":
		a.cmdLogin(ctx, args)
	case "logout":
		a.cmdLogout(ctx)
	case "proposta":
		a.cmdProposta(ctx, args)
	case "minhas":
		a.cmdMinhas(ctx)
	default:
		usage()
	}
}

func (a *app) cmdListar(ctx context.Context) {
	v := screen.NewVitrine(a.api, a.log)
	if err := v.CarregaTudo(ctx); err != nil {
		fail(err)
	}
	imprimeImoveis(v.Itens())
}

func (a *app) cmdBuscar(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("buscar", flag.ExitOnError)
	termo := fs.String("termo", "", "termo de busca (mínimo 2 caracteres)")
	_ = fs.Parse(args)

	v := screen.NewVitrine(a.api, a.log)
	if err := v.Pesquisa(ctx, *termo); err != nil {
		fail(err)
	}
	imprimeImoveis(v.Itens())
}

func (a *app) cmdDetalhes(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("detalhes", flag.ExitOnError)
	id := fs.Int("id", 0, "id do imóvel")
	_ = fs.Parse(args)
	if *id <= 0 {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(1)
	}

	d := screen.NewDetalhes(a.api, a.sess, a.log)
	if err := d.Carrega(ctx, *id); err != nil {
		fail(err)
	}
	im := d.Imovel()
	printJSON(im)
	if a.sess.Ativa() {
		fmt.Printf("Interessado? aluga proposta -imovel %d -texto \"...\"\n", im.ID)
	} else {
		fmt.Println("Faça login para enviar uma proposta.")
	}
}

func (a *app) cmdCadastro(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("cadastro", flag.ExitOnError)
	nome := fs.String("nome", "", "nome completo")
	email := fs.String("email", "", "e-mail")
	cidade := fs.String("cidade", "", "cidade (opcional)")
	senha := fs.String("senha", "", "senha")
	senha2 := fs.String("senha2", "", "confirmação da senha")
	_ = fs.Parse(args)

	c := screen.NewCadastro(a.api)
	cli, err := c.Registra(ctx, *nome, *email, *cidade, *senha, *senha2)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Cadastro realizado. Bem-vindo, %s! Agora faça login.\n", cli.Nome)
}

func (a *app) cmdLogin(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "e-mail")
	senha := fs.String("senha", "", "senha")
	manter := fs.Bool("manter", false, "manter conectado entre execuções")
	_ = fs.Parse(args)
	if *email == "" || *senha == "" {
		fmt.Fprintln(os.Stderr, "need -email and -senha")
		os.Exit(1)
	}

	cli, err := a.api.LoginCliente(ctx, api.Credenciais{Email: *email, Senha: *senha})
	if err != nil {
		fail(err)
	}
	a.sess.Login(*cli)

	if *manter {
		if err := a.bridge.Lembra(cli.ID); err != nil {
			fail(err)
		}
	} else if err := a.bridge.Esquece(); err != nil {
		fail(err)
	}
	fmt.Printf("Olá, %s. Login ok.\n", cli.Nome)
}

func (a *app) cmdLogout(_ context.Context) {
	a.sess.Logout()
	if err := a.bridge.Esquece(); err != nil {
		fail(err)
	}
	fmt.Println("Sessão encerrada.")
}

func (a *app) cmdProposta(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("proposta", flag.ExitOnError)
	imovel := fs.Int("imovel", 0, "id do imóvel")
	texto := fs.String("texto", "", "descrição da proposta")
	_ = fs.Parse(args)
	if *imovel <= 0 || *texto == "" {
		fmt.Fprintln(os.Stderr, "need -imovel and -texto")
		os.Exit(1)
	}

	d := screen.NewDetalhes(a.api, a.sess, a.log)
	if err := d.Carrega(ctx, *imovel); err != nil {
		fail(err)
	}
	if err := d.EnviaProposta(ctx, *texto); err != nil {
		if errors.Is(err, errs.ErrSemSessao) {
			fail(errors.New("faça login antes de enviar uma proposta"))
		}
		fmt.Fprintln(os.Stderr, "Erro... Não foi possível enviar sua proposta")
		fail(err)
	}
	fmt.Println("Obrigado. Sua proposta foi enviada. Aguarde retorno")
}

func (a *app) cmdMinhas(ctx context.Context) {
	m := screen.NewMinhas(a.api, a.sess, a.log)
	if err := m.Carrega(ctx); err != nil {
		if errors.Is(err, errs.ErrSemSessao) {
			fail(errors.New("faça login para ver suas propostas"))
		}
		fail(err)
	}
	for _, p := range m.Itens() {
		titulo := ""
		if p.Imovel != nil {
			titulo = p.Imovel.Titulo
		}
		fmt.Printf("#%d [%s] %s — %q", p.ID, p.Status(), titulo, p.Descricao)
		if p.Resposta != nil {
			fmt.Printf(" | resposta: %q", *p.Resposta)
		}
		fmt.Printf(" (%s)\n", p.CreatedAt.Format("02/01/2006"))
	}
	if len(m.Itens()) == 0 {
		fmt.Println("Nenhuma proposta encontrada.")
	}
}

// leSessao reports whether a command reads the cliente session and therefore
// needs rehydration before dispatch.
func leSessao(cmd string) bool {
	switch cmd {
	case "detalhes", "proposta", "minhas":
		return true
	}
	return false
}

// ---- helpers ----

func imprimeImoveis(itens []model.Imovel) {
	for _, im := range itens {
		disp := "disponível"
		if !im.Disponivel {
			disp = "ocupado"
		}
		fmt.Printf("#%d %s — %s, %s (%s) R$ %.2f/mês [%s]\n",
			im.ID, im.Titulo, im.Endereco, im.Cidade, im.Tipo, im.AluguelFloat(), disp)
	}
	fmt.Printf("%d encontrados\n", len(itens))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	var se *api.StatusError
	if errors.As(err, &se) {
		fmt.Fprintf(os.Stderr, "erro da API: status=%d msg=%s\n", se.Code, se.Message)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
