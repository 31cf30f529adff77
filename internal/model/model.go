// Package model defines domain entities exchanged with the Aluga Aqui API.
package model

import (
	"strconv"
	"strings"
	"time"
)

// TipoImovel is one of the property categories the API accepts.
type TipoImovel string

// Property categories, as stored server-side.
const (
	TipoCasa          TipoImovel = "CASA"
	TipoApartamento   TipoImovel = "APARTAMENTO"
	TipoKitnet        TipoImovel = "KITNET"
	TipoStudio        TipoImovel = "STUDIO"
	TipoCobertura     TipoImovel = "COBERTURA"
	TipoSobrado       TipoImovel = "SOBRADO"
	TipoComercial     TipoImovel = "COMERCIAL"
	TipoSalaComercial TipoImovel = "SALA_COMERCIAL"
	TipoLoja          TipoImovel = "LOJA"
	TipoGalpao        TipoImovel = "GALPAO"
	TipoTerreno       TipoImovel = "TERRENO"
	TipoChacara       TipoImovel = "CHACARA"
)

// Tipos lists every valid category, in the order the API documents them.
var Tipos = []TipoImovel{
	TipoCasa, TipoApartamento, TipoKitnet, TipoStudio,
	TipoCobertura, TipoSobrado, TipoComercial, TipoSalaComercial,
	TipoLoja, TipoGalpao, TipoTerreno, TipoChacara,
}

// Valido reports whether t names a known category.
func (t TipoImovel) Valido() bool {
	for _, v := range Tipos {
		if t == v {
			return true
		}
	}
	return false
}

// Imovel is a rental property as served by GET /imoveis.
// AluguelMensal stays a string on the wire (decimal precision); parse only at
// the display/edit boundary.
type Imovel struct {
	ID             int        `json:"id"`
	Titulo         string     `json:"titulo"`
	Descricao      string     `json:"descricao,omitempty"`
	Endereco       string     `json:"endereco"`
	Cidade         string     `json:"cidade"`
	Bairro         string     `json:"bairro,omitempty"`
	CEP            string     `json:"cep,omitempty"`
	Tipo           TipoImovel `json:"tipo"`
	AluguelMensal  string     `json:"aluguelMensal"`
	Disponivel     bool       `json:"disponivel"`
	Fotos          string     `json:"fotos,omitempty"`
	ProprietarioID string     `json:"proprietarioId"`
	AdminID        string     `json:"adminId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// AluguelFloat parses the monthly rent for display. Returns 0 when the server
// sent something unparseable.
func (i Imovel) AluguelFloat() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(i.AluguelMensal), 64)
	if err != nil {
		return 0
	}
	return v
}

// Cliente is a registered renter.
type Cliente struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Cidade string `json:"cidade"`
}

// Admin is an administrator account. Nivel is the access level (3 unlocks
// administrator management; 1 is denied destructive actions).
type Admin struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Nivel int    `json:"nivel"`
}

// AdminLogado is the admin login response: the account plus the bearer token
// attached to every authenticated request.
type AdminLogado struct {
	Admin
	Token string `json:"token"`
}

// StatusProposta is the derived state of a proposal.
type StatusProposta string

const (
	StatusPendente   StatusProposta = "PENDENTE"
	StatusAprovada   StatusProposta = "APROVADA"
	StatusRejeitada  StatusProposta = "REJEITADA"
	StatusRespondida StatusProposta = "RESPONDIDA"
)

// Proposta is a rental proposal tied to a cliente and an imovel. Resposta nil
// means "awaiting admin response"; once set the proposal is resolved.
type Proposta struct {
	ID        int        `json:"id"`
	ClienteID string     `json:"clienteId"`
	ImovelID  int        `json:"imovelId"`
	Imovel    *Imovel    `json:"imovel,omitempty"`
	Cliente   *Cliente   `json:"cliente,omitempty"`
	Descricao string     `json:"descricao"`
	Resposta  *string    `json:"resposta"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Status derives the display state from the response text. The API stores no
// status column; the response wording is the only signal.
func (p Proposta) Status() StatusProposta {
	if p.Resposta == nil {
		return StatusPendente
	}
	r := strings.ToLower(*p.Resposta)
	switch {
	case strings.Contains(r, "aprovada"):
		return StatusAprovada
	case strings.Contains(r, "rejeitada"):
		return StatusRejeitada
	default:
		return StatusRespondida
	}
}

// DadosGerais are the headline counters of GET /dashboard/gerais.
type DadosGerais struct {
	Clientes  int `json:"clientes"`
	Imoveis   int `json:"imoveis"`
	Propostas int `json:"propostas"`
}

// ImoveisPorTipo is one slice of GET /dashboard/imoveisTipo.
type ImoveisPorTipo struct {
	Tipo TipoImovel `json:"tipo"`
	Num  int        `json:"num"`
}

// ClientesPorCidade is one slice of GET /dashboard/clientesCidade.
type ClientesPorCidade struct {
	Cidade string `json:"cidade"`
	Num    int    `json:"num"`
}
