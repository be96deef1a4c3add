package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL: abre la
// transacción, ata los repositorios de inventario a ella y hace Commit solo si
// el callback termina sin error; cualquier fallo revierte todo lo ejecutado.
type TxRunner struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool, log zerolog.Logger) *TxRunner {
	return &TxRunner{pool: pool, log: log}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El rollback tras un fallo es best-effort: si también
// falla se registra en el log y se devuelve el error original.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Error().Err(rbErr).Msg("rollback de transacción de inventario")
		}
	}()

	repos := inventory.TxRepos{
		Items:  NewItemRepository(tx),
		Lots:   NewLotRepository(tx),
		Ledger: NewTransactionRepository(tx),
		Images: NewImageRepository(tx),
		Specs:  NewTechnicalSpecRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
