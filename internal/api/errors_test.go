package api

import "testing"

func TestStatusError_IssueList(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"erro":{"issues":[{"path":["aluguelMensal"],"message":"deve ser positivo"},{"path":["tipo"],"message":"inválido"}]}}`)
	se := statusError(400, raw)
	want := "aluguelMensal: deve ser positivo; tipo: inválido"
	if se.Message != want {
		t.Fatalf("got %q, want %q", se.Message, want)
	}
}

func TestStatusError_Message(t *testing.T) {
	t.Parallel()

	se := statusError(401, []byte(`{"message":"token inválido"}`))
	if se.Message != "token inválido" {
		t.Fatalf("got %q", se.Message)
	}
}

func TestStatusError_Detalhes(t *testing.T) {
	t.Parallel()

	se := statusError(400, []byte(`{"detalhes":["email obrigatório","senha curta"]}`))
	if se.Message != "email obrigatório; senha curta" {
		t.Fatalf("got %q", se.Message)
	}
}

func TestStatusError_RawBodyFallback(t *testing.T) {
	t.Parallel()

	se := statusError(500, []byte("deu ruim"))
	if se.Message != "deu ruim" {
		t.Fatalf("got %q", se.Message)
	}
}

func TestStatusError_StatusTextFallback(t *testing.T) {
	t.Parallel()

	se := statusError(503, nil)
	if se.Message != "Service Unavailable" {
		t.Fatalf("got %q", se.Message)
	}
}
