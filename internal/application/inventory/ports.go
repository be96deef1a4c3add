package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Items  repository.ItemRepository
	Lots   repository.LotRepository
	Ledger repository.TransactionRepository
	Images repository.ImageRepository
	Specs  repository.TechnicalSpecRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: si fn devuelve error se hace rollback de todo lo ejecutado.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
