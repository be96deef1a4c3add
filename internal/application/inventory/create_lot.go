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

// CreateLotInput entrada para crear un lote. El item padre se identifica por
// ItemID o por SapCode (exactamente uno).
type CreateLotInput struct {
	UserID         int64
	ItemID         *int64
	SapCode        string
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	LocationID     int64
}

// CreateLotResult resultado de la creación de un lote.
type CreateLotResult struct {
	LotID     int64
	ItemID    int64
	LotNumber int
	Quantity  decimal.Decimal
}

// CreateLot crea un lote bajo un item con numeración explícita: dentro de la
// transacción se bloquea la fila del item padre (FOR UPDATE) y después se
// calcula max(lot_number)+1, de modo que dos creaciones concurrentes bajo el
// mismo item se serializan y no compiten por el número. A diferencia del alta
// de items, esta entrada NUNCA fusiona con lotes existentes.
func (uc *UseCase) CreateLot(ctx context.Context, input CreateLotInput) (*CreateLotResult, error) {
	if (input.ItemID == nil) == (input.SapCode == "") {
		return nil, fmt.Errorf("%w: indicar item_id o sap_code (exactamente uno)", domain.ErrInvalidInput)
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if err := uc.checkRef(ctx, repository.RefUser, input.UserID, "fkIdUser"); err != nil {
		return nil, err
	}
	if err := uc.checkRef(ctx, repository.RefLocation, input.LocationID, "fkIdLocation"); err != nil {
		return nil, err
	}

	// Resolver el item padre fuera de la tx; la existencia se revalida al
	// bloquear la fila dentro de ella.
	itemID, err := uc.resolveItemID(ctx, input)
	if err != nil {
		return nil, err
	}

	rec, err := domaininv.ReconcileCreation(input.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	correlationID := uuid.New().String()
	var result CreateLotResult

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		parent, err := repos.Items.GetByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("%w: fkIdItem=%d no existe", domain.ErrInvalidReference, itemID)
		}

		lotNumber, err := repos.Lots.NextLotNumber(ctx, parent.ID)
		if err != nil {
			return err
		}

		lot := &entity.Lot{
			ItemID:         parent.ID,
			LotNumber:      lotNumber,
			Quantity:       rec.NewQuantity,
			ExpirationDate: input.ExpirationDate,
			LocationID:     input.LocationID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := repos.Lots.Create(ctx, lot); err != nil {
			return err
		}

		if err := repos.Ledger.Create(ctx, &entity.Transaction{
			CorrelationID:     correlationID,
			UserID:            input.UserID,
			LotID:             &lot.ID,
			ItemType:          entity.SubjectLot,
			ActionDescription: rec.Action,
			QuantityChange:    rec.QuantityChange,
			OldQuantity:       decimal.Zero,
			NewQuantity:       rec.NewQuantity,
			TransactionDate:   now,
		}); err != nil {
			return err
		}

		result = CreateLotResult{
			LotID:     lot.ID,
			ItemID:    parent.ID,
			LotNumber: lotNumber,
			Quantity:  rec.NewQuantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *UseCase) resolveItemID(ctx context.Context, input CreateLotInput) (int64, error) {
	if input.ItemID != nil {
		if err := uc.checkRef(ctx, repository.RefItem, *input.ItemID, "fkIdItem"); err != nil {
			return 0, err
		}
		return *input.ItemID, nil
	}
	item, err := uc.items.GetBySapCode(ctx, input.SapCode)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, fmt.Errorf("%w: sapCode=%q no existe", domain.ErrInvalidReference, input.SapCode)
	}
	return item.ID, nil
}
