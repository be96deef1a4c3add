package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Result es el resultado de reconciliar una cantidad: el nuevo saldo, la
// magnitud del cambio (siempre >= 0, tal como se persiste en el ledger) y la
// etiqueta de acción (IN/OUT/AJUST).
type Result struct {
	NewQuantity    decimal.Decimal
	QuantityChange decimal.Decimal
	Action         string
}

// Reconcile calcula el nuevo saldo de un item o lote (servicio de dominio, puro).
//
// Modo ajuste (isAdjust=true): requested es el valor absoluto objetivo; el
// cambio es la diferencia con el saldo anterior y la acción siempre es AJUST,
// incluso con delta cero.
// Modo delta: requested se suma al saldo (negativo = salida); la acción es IN
// u OUT según el signo.
//
// Si el saldo resultante es negativo devuelve domain.ErrNegativeQuantity y el
// caller no debe escribir nada.
func Reconcile(old, requested decimal.Decimal, isAdjust bool) (Result, error) {
	var newQty, change decimal.Decimal
	var action string

	if isAdjust {
		newQty = requested
		change = newQty.Sub(old)
		action = entity.ActionAJUST
	} else {
		newQty = old.Add(requested)
		change = requested
		if change.GreaterThan(decimal.Zero) {
			action = entity.ActionIN
		} else {
			action = entity.ActionOUT
		}
	}

	if newQty.LessThan(decimal.Zero) {
		return Result{}, domain.ErrNegativeQuantity
	}

	return Result{
		NewQuantity:    newQty,
		QuantityChange: change.Abs(),
		Action:         action,
	}, nil
}

// ReconcileCreation caso degenerado del alta de stock: saldo anterior cero,
// entrada por la cantidad inicial.
func ReconcileCreation(quantity decimal.Decimal) (Result, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return Result{}, domain.ErrInvalidInput
	}
	return Result{
		NewQuantity:    quantity,
		QuantityChange: quantity,
		Action:         entity.ActionIN,
	}, nil
}
