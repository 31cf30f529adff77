package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alugaaqui/aluga-cli/internal/api"
	"github.com/alugaaqui/aluga-cli/internal/model"
)

// ---- dashboard ----

func (c *console) doDashboard(ctx context.Context) error {
	if err := c.dash.Carrega(ctx); err != nil {
		return err
	}
	g := c.dash.Gerais
	fmt.Printf("Clientes: %d | Imóveis: %d | Propostas: %d\n", g.Clientes, g.Imoveis, g.Propostas)
	fmt.Println("Imóveis por tipo:")
	for _, t := range c.dash.PorTipo {
		fmt.Printf("  %-15s %d\n", t.Tipo, t.Num)
	}
	fmt.Println("Clientes por cidade:")
	for _, ci := range c.dash.PorCidade {
		fmt.Printf("  %-15s %d\n", ci.Cidade, ci.Num)
	}
	return nil
}

// ---- imóveis ----

func (c *console) doImoveis(ctx context.Context) error {
	if err := c.imoveis.Carrega(ctx); err != nil {
		return err
	}
	for _, im := range c.imoveis.Itens() {
		disp := "disponível"
		if !im.Disponivel {
			disp = "ocupado"
		}
		fmt.Printf("#%d %s — %s, %s (%s) R$ %.2f [%s]\n",
			im.ID, im.Titulo, im.Endereco, im.Cidade, im.Tipo, im.AluguelFloat(), disp)
	}
	fmt.Printf("%d imóveis\n", len(c.imoveis.Itens()))
	return nil
}

// perguntaImovel prompts every payload field. Blank answers to optional
// fields stay blank and are omitted from the JSON; atuais pre-fills defaults
// on edit.
func (c *console) perguntaImovel(atual *model.Imovel) (api.ImovelPayload, error) {
	var def api.ImovelPayload
	if atual != nil {
		def = api.ImovelPayload{
			Titulo:        atual.Titulo,
			Descricao:     atual.Descricao,
			Endereco:      atual.Endereco,
			Cidade:        atual.Cidade,
			Bairro:        atual.Bairro,
			CEP:           atual.CEP,
			Tipo:          atual.Tipo,
			AluguelMensal: atual.AluguelFloat(),
			Disponivel:    atual.Disponivel,
			Fotos:         atual.Fotos,
		}
	}
	p := api.ImovelPayload{
		Titulo:    c.perguntaDef("Título", def.Titulo),
		Descricao: c.perguntaDef("Descrição (opcional)", def.Descricao),
		Endereco:  c.perguntaDef("Endereço", def.Endereco),
		Cidade:    c.perguntaDef("Cidade", def.Cidade),
		Bairro:    c.perguntaDef("Bairro (opcional)", def.Bairro),
		CEP:       c.perguntaDef("CEP (opcional)", def.CEP),
		Fotos:     c.perguntaDef("Fotos URL (opcional)", def.Fotos),
	}

	tipo := c.perguntaDef(fmt.Sprintf("Tipo %v", model.Tipos), string(def.Tipo))
	p.Tipo = model.TipoImovel(strings.ToUpper(strings.TrimSpace(tipo)))

	aluguel := c.perguntaDef("Aluguel mensal (R$)", trimFloat(def.AluguelMensal))
	v, err := strconv.ParseFloat(strings.ReplaceAll(aluguel, ",", "."), 64)
	if err != nil {
		return p, fmt.Errorf("valor de aluguel inválido: %q", aluguel)
	}
	p.AluguelMensal = v

	p.Disponivel = c.confirma("Disponível?")
	return p, nil
}

func (c *console) doNovoImovel(ctx context.Context) error {
	p, err := c.perguntaImovel(nil)
	if err != nil {
		return err
	}
	im, err := c.imoveis.Novo(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("Imóvel cadastrado com sucesso (#%d)\n", im.ID)
	return nil
}

func (c *console) doEditarImovel(ctx context.Context, id int) error {
	if err := c.imoveis.Carrega(ctx); err != nil {
		return err
	}
	var atual *model.Imovel
	for _, im := range c.imoveis.Itens() {
		if im.ID == id {
			atual = &im
			break
		}
	}
	if atual == nil {
		fmt.Printf("imóvel #%d não está na lista\n", id)
		return nil
	}
	p, err := c.perguntaImovel(atual)
	if err != nil {
		return err
	}
	if err := c.imoveis.Edita(ctx, id, p); err != nil {
		return err
	}
	fmt.Println("Imóvel atualizado com sucesso")
	return nil
}

func (c *console) doExcluirImovel(ctx context.Context, id int) error {
	if !c.confirma(fmt.Sprintf("Confirma a exclusão do imóvel #%d?", id)) {
		return nil
	}
	if err := c.imoveis.Exclui(ctx, id); err != nil {
		return err
	}
	fmt.Println("Imóvel excluído com sucesso")
	return nil
}

// ---- admins ----

func (c *console) doAdmins(ctx context.Context) error {
	if err := c.contas.Carrega(ctx); err != nil {
		return err
	}
	for _, a := range c.contas.Itens() {
		fmt.Printf("%s  %-25s %-30s nível %d\n", a.ID, a.Nome, a.Email, a.Nivel)
	}
	return nil
}

func (c *console) doNivel(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Println("uso: nivel <id> <1-5>")
		return nil
	}
	nivel, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("nível inválido")
		return nil
	}
	if err := c.contas.AlteraNivel(ctx, args[0], nivel); err != nil {
		return err
	}
	fmt.Println("Nível alterado com sucesso")
	return nil
}

func (c *console) doExcluirAdmin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Println("uso: excluir-admin <id>")
		return nil
	}
	if !c.confirma(fmt.Sprintf("Confirma a exclusão do admin %s?", args[0])) {
		return nil
	}
	if err := c.contas.Exclui(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Admin excluído com sucesso")
	return nil
}

// ---- propostas ----

func (c *console) doPropostas(ctx context.Context) error {
	if err := c.propostas.Carrega(ctx); err != nil {
		return err
	}
	for _, p := range c.propostas.Itens() {
		titulo, nome := "", ""
		if p.Imovel != nil {
			titulo = p.Imovel.Titulo
		}
		if p.Cliente != nil {
			nome = p.Cliente.Nome
		}
		fmt.Printf("#%d [%s] %s | %s: %q", p.ID, p.Status(), titulo, nome, p.Descricao)
		if p.Resposta != nil {
			fmt.Printf(" | resposta: %q", *p.Resposta)
		}
		fmt.Println()
	}
	fmt.Printf("%d propostas\n", len(c.propostas.Itens()))
	return nil
}

func (c *console) doResponder(ctx context.Context, id int) error {
	texto := c.pergunta("Resposta do Aluga Aqui")
	if strings.TrimSpace(texto) == "" {
		return nil
	}
	if err := c.propostas.Responde(ctx, id, texto); err != nil {
		return err
	}
	fmt.Println("Resposta registrada")
	return nil
}

func (c *console) doExcluirProposta(ctx context.Context, id int) error {
	if !c.confirma(fmt.Sprintf("Confirma a exclusão da proposta #%d?", id)) {
		return nil
	}
	if err := c.propostas.Exclui(ctx, id); err != nil {
		return err
	}
	fmt.Println("Proposta excluída com sucesso")
	return nil
}

// ---- prompt helpers ----

func (c *console) pergunta(label string) string {
	fmt.Printf("%s: ", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) perguntaDef(label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !c.in.Scan() {
		return def
	}
	s := strings.TrimSpace(c.in.Text())
	if s == "" {
		return def
	}
	return s
}

func (c *console) confirma(label string) bool {
	fmt.Printf("%s (s/n): ", label)
	if !c.in.Scan() {
		return false
	}
	r := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return r == "s" || r == "sim" || r == "y"
}

func trimFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
