package session

import (
	"testing"

	"github.com/alugaaqui/aluga-cli/internal/model"
)

func TestClienteStore_LoginLogout(t *testing.T) {
	t.Parallel()

	s := NewClienteStore()
	if s.Ativa() {
		t.Fatalf("fresh store must be empty")
	}

	s.Login(model.Cliente{ID: "7", Nome: "Maria", Email: "m@x.com", Cidade: "Pelotas"})
	if !s.Ativa() || s.Atual().Nome != "Maria" {
		t.Fatalf("login should replace the record: %+v", s.Atual())
	}

	// login replaces wholesale, old fields never linger
	s.Login(model.Cliente{ID: "8", Nome: "João"})
	if s.Atual().Cidade != "" {
		t.Fatalf("stale field survived a login: %+v", s.Atual())
	}

	s.Logout()
	if s.Ativa() || s.Atual() != (model.Cliente{}) {
		t.Fatalf("logout must reset to empty")
	}
}

func TestClienteStore_Observa(t *testing.T) {
	t.Parallel()

	s := NewClienteStore()
	n := 0
	s.Observa(func() { n++ })

	s.Login(model.Cliente{ID: "1"})
	s.Logout()
	if n != 2 {
		t.Fatalf("observer should fire per mutation, got %d", n)
	}
}

func TestAdminStore_Observa(t *testing.T) {
	t.Parallel()

	s := NewAdminStore()
	n := 0
	s.Observa(func() { n++ })
	s.Observa(func() { n++ })

	s.Login(model.AdminLogado{Admin: model.Admin{ID: "a1"}})
	s.Logout()
	if n != 4 {
		t.Fatalf("every observer should fire per mutation, got %d", n)
	}
}

func TestAdminStore_HoldsToken(t *testing.T) {
	t.Parallel()

	s := NewAdminStore()
	s.Login(model.AdminLogado{
		Admin: model.Admin{ID: "a1", Nome: "Ana", Nivel: 3},
		Token: "jwt-abc",
	})
	if !s.Ativa() || s.Atual().Token != "jwt-abc" || s.Atual().Nivel != 3 {
		t.Fatalf("unexpected record: %+v", s.Atual())
	}

	s.Logout()
	if s.Atual().Token != "" {
		t.Fatalf("token must not survive logout")
	}
}
