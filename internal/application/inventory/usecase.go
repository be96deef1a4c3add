package inventory

import (
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Policy decisiones de negocio configurables del motor de inventario.
type Policy struct {
	// SkipZeroAdjust: si un ajuste (AJUST) no cambia el saldo, con true no se
	// escribe entrada en el ledger; con false (por defecto) se registra
	// igualmente, con quantity_change = 0, para dejar rastro de auditoría.
	SkipZeroAdjust bool
}

// UseCase orquesta las escrituras transaccionales de inventario: alta de
// items y lotes, reconciliación de cantidades, actualización de metadatos y
// borrado. Toda mutación de saldo pasa por el motor de reconciliación y
// produce exactamente una entrada en el ledger dentro de la misma transacción.
type UseCase struct {
	txRunner TxRunner
	checker  repository.ReferenceChecker
	items    repository.ItemRepository
	policy   Policy
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, checker repository.ReferenceChecker, items repository.ItemRepository, policy Policy) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		checker:  checker,
		items:    items,
		policy:   policy,
	}
}
