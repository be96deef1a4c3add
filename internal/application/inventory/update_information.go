package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UpdateInformation actualiza metadatos de un item de forma parcial: solo los
// campos presentes en el patch se escriben (cláusula SET construida con el
// builder, siempre parametrizada); los ausentes se conservan. No toca el saldo
// y por tanto no genera entrada en el ledger.
func (uc *UseCase) UpdateInformation(ctx context.Context, itemID int64, patch repository.ItemPatch) error {
	if itemID <= 0 {
		return fmt.Errorf("%w: id de item inválido", domain.ErrInvalidInput)
	}
	if patch.IsEmpty() {
		return fmt.Errorf("%w: ningún campo para actualizar", domain.ErrInvalidInput)
	}
	if patch.CategoryID != nil {
		if err := uc.checkRef(ctx, repository.RefCategory, *patch.CategoryID, "fkIdCategory"); err != nil {
			return err
		}
	}
	if patch.LocationID != nil {
		if err := uc.checkRef(ctx, repository.RefLocation, *patch.LocationID, "fkIdLocation"); err != nil {
			return err
		}
	}

	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		item, err := repos.Items.GetByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: fkIdItem=%d no existe", domain.ErrInvalidReference, itemID)
		}
		return repos.Items.UpdateInfo(ctx, itemID, patch)
	})
}

// DeleteItem elimina un item y, en cascada, su imagen asociada, dentro de una
// única transacción.
func (uc *UseCase) DeleteItem(ctx context.Context, itemID int64) error {
	if itemID <= 0 {
		return fmt.Errorf("%w: id de item inválido", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		item, err := repos.Items.GetByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := repos.Items.Delete(ctx, itemID); err != nil {
			return err
		}
		if item.ImageID != nil {
			return repos.Images.Delete(ctx, *item.ImageID)
		}
		return nil
	})
}
