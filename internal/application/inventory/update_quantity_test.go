package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func deltaInput(qty string, isAjust bool) inventory.UpdateQuantityInput {
	return inventory.UpdateQuantityInput{
		UserID:    1,
		Subject:   entity.SubjectItem,
		SubjectID: 7,
		Quantity:  d(qty),
		IsAjust:   isAjust,
	}
}

// Delta negativo: salida OUT, saldo 10 → 5, el ledger guarda la magnitud 5.
func TestUpdateQuantity_SalidaDelta(t *testing.T) {
	f := newFixture(inventory.Policy{})
	f.allRefsExist()

	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).Return(&entity.Item{ID: 7, Quantity: d("10")}, nil)
	f.items.On("UpdateQuantity", mock.Anything, int64(7), d("5")).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	res, err := f.uc.UpdateQuantity(context.Background(), deltaInput("-5", false))
	require.NoError(t, err)

	assert.Equal(t, entity.ActionOUT, res.Action)
	assert.True(t, res.OldQuantity.Equal(d("10")))
	assert.True(t, res.NewQuantity.Equal(d("5")))
	assert.True(t, res.QuantityChange.Equal(d("5")))
	assert.True(t, res.LedgerWritten)

	tx := f.ledger.Calls[0].Arguments.Get(1).(*entity.Transaction)
	assert.Equal(t, entity.ActionOUT, tx.ActionDescription)
	assert.True(t, tx.QuantityChange.Equal(d("5")))
	assert.True(t, tx.OldQuantity.Sub(tx.NewQuantity).Equal(tx.QuantityChange))
}

// Saldo insuficiente: se rechaza con ErrNegativeQuantity y no se escribe nada.
func TestUpdateQuantity_SaldoInsuficiente(t *testing.T) {
	f := newFixture(inventory.Policy{})
	f.allRefsExist()

	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).Return(&entity.Item{ID: 7, Quantity: d("10")}, nil)

	_, err := f.uc.UpdateQuantity(context.Background(), deltaInput("-20", false))
	require.ErrorIs(t, err, domain.ErrNegativeQuantity)

	f.items.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Ajuste a valor absoluto: 10 → 7, AJUST con cambio 3.
func TestUpdateQuantity_Ajuste(t *testing.T) {
	f := newFixture(inventory.Policy{})
	f.allRefsExist()

	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).Return(&entity.Item{ID: 7, Quantity: d("10")}, nil)
	f.items.On("UpdateQuantity", mock.Anything, int64(7), d("7")).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	res, err := f.uc.UpdateQuantity(context.Background(), deltaInput("7", true))
	require.NoError(t, err)

	assert.Equal(t, entity.ActionAJUST, res.Action)
	assert.True(t, res.QuantityChange.Equal(d("3")))
	assert.True(t, res.NewQuantity.Equal(d("7")))
}

// Ajuste sin cambio con la política por defecto: se escribe entrada AJUST con
// cambio cero (rastro de auditoría completo).
func TestUpdateQuantity_AjusteSinCambioEscribeLedger(t *testing.T) {
	f := newFixture(inventory.Policy{})
	f.allRefsExist()

	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).Return(&entity.Item{ID: 7, Quantity: d("10")}, nil)
	f.items.On("UpdateQuantity", mock.Anything, int64(7), d("10")).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	res, err := f.uc.UpdateQuantity(context.Background(), deltaInput("10", true))
	require.NoError(t, err)

	assert.True(t, res.LedgerWritten)
	tx := f.ledger.Calls[0].Arguments.Get(1).(*entity.Transaction)
	assert.Equal(t, entity.ActionAJUST, tx.ActionDescription)
	assert.True(t, tx.QuantityChange.IsZero())
}

// Ajuste sin cambio con SkipZeroAdjust: ni saldo ni ledger se escriben.
func TestUpdateQuantity_AjusteSinCambioConSkip(t *testing.T) {
	f := newFixture(inventory.Policy{SkipZeroAdjust: true})
	f.allRefsExist()

	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).Return(&entity.Item{ID: 7, Quantity: d("10")}, nil)

	res, err := f.uc.UpdateQuantity(context.Background(), deltaInput("10", true))
	require.NoError(t, err)

	assert.False(t, res.LedgerWritten)
	f.items.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Reconciliación sobre un lote: mismo motor, sujeto lot en el ledger.
func TestUpdateQuantity_SobreLote(t *testing.T) {
	f := newFixture(inventory.Policy{})
	f.allRefsExist()

	f.lots.On("GetByIDForUpdate", mock.Anything, int64(9)).Return(&entity.Lot{ID: 9, Quantity: d("3")}, nil)
	f.lots.On("UpdateQuantity", mock.Anything, int64(9), d("8")).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	in := inventory.UpdateQuantityInput{UserID: 1, Subject: entity.SubjectLot, SubjectID: 9, Quantity: d("5")}
	res, err := f.uc.UpdateQuantity(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, entity.ActionIN, res.Action)
	tx := f.ledger.Calls[0].Arguments.Get(1).(*entity.Transaction)
	assert.Equal(t, entity.SubjectLot, tx.ItemType)
	require.NotNil(t, tx.LotID)
	assert.Equal(t, int64(9), *tx.LotID)
	assert.Nil(t, tx.ItemID)
}

// Sujeto inexistente: referencia inválida, nada escrito.
func TestUpdateQuantity_SujetoInexistente(t *testing.T) {
	f := newFixture(inventory.Policy{})
	f.allRefsExist()

	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).Return(nil, nil)

	_, err := f.uc.UpdateQuantity(context.Background(), deltaInput("1", false))
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Discriminador desconocido: entrada inválida sin abrir transacción.
func TestUpdateQuantity_SujetoInvalido(t *testing.T) {
	f := newFixture(inventory.Policy{})

	in := deltaInput("1", false)
	in.Subject = "warehouse"
	_, err := f.uc.UpdateQuantity(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.runner.runs)
}
