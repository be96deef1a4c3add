package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UpdateQuantityInput entrada para la reconciliación de cantidad de un item o
// lote. Subject indica el discriminador (entity.SubjectItem / SubjectLot).
// En modo delta Quantity puede ser negativa; con IsAjust true es el valor
// absoluto objetivo.
type UpdateQuantityInput struct {
	UserID    int64
	Subject   string
	SubjectID int64
	Quantity  decimal.Decimal
	IsAjust   bool
}

// UpdateQuantityResult saldos resultantes de la reconciliación.
type UpdateQuantityResult struct {
	Action         string
	OldQuantity    decimal.Decimal
	NewQuantity    decimal.Decimal
	QuantityChange decimal.Decimal
	// LedgerWritten es false solo con la política SkipZeroAdjust activa y un
	// ajuste de delta cero.
	LedgerWritten bool
}

// UpdateQuantity reconcilia el saldo de un item o lote dentro de una
// transacción: bloquea la fila (SELECT FOR UPDATE), calcula el nuevo saldo con
// el motor de reconciliación y persiste saldo + entrada del ledger de forma
// atómica. Un saldo resultante negativo rechaza la operación sin escribir nada.
func (uc *UseCase) UpdateQuantity(ctx context.Context, input UpdateQuantityInput) (*UpdateQuantityResult, error) {
	if input.Subject != entity.SubjectItem && input.Subject != entity.SubjectLot {
		return nil, fmt.Errorf("%w: itemType debe ser %q o %q", domain.ErrInvalidInput, entity.SubjectItem, entity.SubjectLot)
	}
	if input.SubjectID <= 0 {
		return nil, fmt.Errorf("%w: id de sujeto inválido", domain.ErrInvalidInput)
	}
	if err := uc.checkRef(ctx, repository.RefUser, input.UserID, "fkIdUser"); err != nil {
		return nil, err
	}

	now := time.Now()
	correlationID := uuid.New().String()
	var result UpdateQuantityResult

	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		old, err := uc.lockSubject(ctx, repos, input.Subject, input.SubjectID)
		if err != nil {
			return err
		}

		rec, err := domaininv.Reconcile(old, input.Quantity, input.IsAjust)
		if err != nil {
			return err
		}

		// Política de ajustes sin cambio (ver Policy.SkipZeroAdjust).
		if input.IsAjust && rec.QuantityChange.IsZero() && uc.policy.SkipZeroAdjust {
			result = UpdateQuantityResult{
				Action:         rec.Action,
				OldQuantity:    old,
				NewQuantity:    rec.NewQuantity,
				QuantityChange: rec.QuantityChange,
				LedgerWritten:  false,
			}
			return nil
		}

		if err := uc.persistQuantity(ctx, repos, input.Subject, input.SubjectID, rec.NewQuantity); err != nil {
			return err
		}

		ledger := &entity.Transaction{
			CorrelationID:     correlationID,
			UserID:            input.UserID,
			ItemType:          input.Subject,
			ActionDescription: rec.Action,
			QuantityChange:    rec.QuantityChange,
			OldQuantity:       old,
			NewQuantity:       rec.NewQuantity,
			TransactionDate:   now,
		}
		if input.Subject == entity.SubjectItem {
			ledger.ItemID = &input.SubjectID
		} else {
			ledger.LotID = &input.SubjectID
		}
		if err := repos.Ledger.Create(ctx, ledger); err != nil {
			return err
		}

		result = UpdateQuantityResult{
			Action:         rec.Action,
			OldQuantity:    old,
			NewQuantity:    rec.NewQuantity,
			QuantityChange: rec.QuantityChange,
			LedgerWritten:  true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// lockSubject bloquea la fila del sujeto y devuelve su saldo actual.
func (uc *UseCase) lockSubject(ctx context.Context, repos TxRepos, subject string, id int64) (decimal.Decimal, error) {
	if subject == entity.SubjectItem {
		item, err := repos.Items.GetByIDForUpdate(ctx, id)
		if err != nil {
			return decimal.Zero, err
		}
		if item == nil {
			return decimal.Zero, fmt.Errorf("%w: fkIdItem=%d no existe", domain.ErrInvalidReference, id)
		}
		return item.Quantity, nil
	}
	lot, err := repos.Lots.GetByIDForUpdate(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	if lot == nil {
		return decimal.Zero, fmt.Errorf("%w: fkIdLot=%d no existe", domain.ErrInvalidReference, id)
	}
	return lot.Quantity, nil
}

func (uc *UseCase) persistQuantity(ctx context.Context, repos TxRepos, subject string, id int64, qty decimal.Decimal) error {
	if subject == entity.SubjectItem {
		return repos.Items.UpdateQuantity(ctx, id, qty)
	}
	return repos.Lots.UpdateQuantity(ctx, id, qty)
}
