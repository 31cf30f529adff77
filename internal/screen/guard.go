package screen

import (
	"github.com/alugaaqui/aluga-cli/internal/errs"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

// ExigeAdmin is the route guard for admin-only screens: it fails when no
// admin session exists so the caller can bounce to the login screen.
func ExigeAdmin(sess *session.AdminStore) error {
	if !sess.Ativa() {
		return errs.ErrUnauthorized
	}
	return nil
}

// nivelMinimoExclusao is the level above which destructive actions on imoveis
// and admins are allowed client-side. This is a UX gate, not enforcement: the
// API re-validates the bearer token on every call.
const nivelMinimoExclusao = 1

// podeExcluir reports whether the session's level clears the local gate.
func podeExcluir(sess *session.AdminStore) bool {
	return sess.Ativa() && sess.Atual().Nivel > nivelMinimoExclusao
}
