package remote

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner el backend no ofrece transacciones: las escrituras se aplican en orden y un
// fallo después de al menos una escritura exitosa se informa como ErrPartialUpdate.
type TxRunner struct {
	c *Client
}

// NewTxRunner construye el runner sobre c.
func NewTxRunner(c *Client) *TxRunner {
	return &TxRunner{c: c}
}

// Run ejecuta fn con repos que cuentan escrituras.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	var writes atomic.Int32
	err := fn(NewRepos(r.c.tracked(&writes)))
	if err == nil {
		return nil
	}
	if n := writes.Load(); n > 0 {
		r.c.log.Error().Err(err).Int32("writes", n).Msg("escritura parcial en el backend")
		return fmt.Errorf("%w: %w", domain.ErrPartialUpdate, err)
	}
	return err
}
