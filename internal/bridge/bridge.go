// Package bridge persists the cliente identifier across runs and rehydrates
// the cliente session store on start.
package bridge

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/alugaaqui/aluga-cli/internal/model"
	"github.com/alugaaqui/aluga-cli/internal/session"
)

const idFile = "cliente_id"

// ClienteFetcher is the slice of the API client the bridge needs.
type ClienteFetcher interface {
	GetCliente(ctx context.Context, id string) (*model.Cliente, error)
}

// Bridge owns the durable cliente id file under the config dir.
type Bridge struct {
	dir  string
	api  ClienteFetcher
	sess *session.ClienteStore
	log  *zap.Logger
}

// New constructs a Bridge rooted at dir.
func New(dir string, api ClienteFetcher, sess *session.ClienteStore, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{dir: dir, api: api, sess: sess, log: log}
}

func (b *Bridge) idPath() string { return filepath.Join(b.dir, idFile) }

// IDSalvo returns the stored cliente id, if any.
func (b *Bridge) IDSalvo() (string, bool) {
	raw, err := os.ReadFile(b.idPath())
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(raw))
	return id, id != ""
}

// Reidrata loads the stored id and, when present, fetches the cliente record
// and logs it into the session store. Any failure leaves the session empty;
// nothing is shown to the user beyond a log entry.
func (b *Bridge) Reidrata(ctx context.Context) {
	id, ok := b.IDSalvo()
	if !ok {
		return
	}
	cli, err := b.api.GetCliente(ctx, id)
	if err != nil {
		b.log.Warn("session rehydration failed", zap.String("cliente_id", id), zap.Error(err))
		return
	}
	b.sess.Login(*cli)
}

// Lembra stores the cliente id durably (the "remember me" path).
func (b *Bridge) Lembra(id string) error {
	if err := os.MkdirAll(b.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(b.idPath(), []byte(strings.TrimSpace(id)), 0o600)
}

// Esquece removes any stored id. Missing file is not an error.
func (b *Bridge) Esquece() error {
	err := os.Remove(b.idPath())
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
