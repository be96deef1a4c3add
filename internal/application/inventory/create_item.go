package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CreateItemInput entrada para el alta de stock de un item.
type CreateItemInput struct {
	UserID         int64
	Name           string
	Aliases        string
	Brand          string
	Description    string
	SapCode        string
	CategoryID     int64
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	BatchCode      string
	LocationID     int64
	TechnicalSpecs map[string]*string
	Image          []byte
	ImageMimeType  string
}

// CreateItemResult resultado del alta: id afectado y saldos del ledger.
type CreateItemResult struct {
	ItemID         int64
	Merged         bool
	Action         string
	OldQuantity    decimal.Decimal
	NewQuantity    decimal.Decimal
	QuantityChange decimal.Decimal
}

// CreateItem da de alta stock de un item. Política de fusión de lotes: si ya
// existe un item con los mismos (nombre, marca, vencimiento, ubicación) la
// cantidad se suma a esa fila (bloqueada FOR UPDATE) y el ledger registra la
// entrada contra el id existente; si no, se inserta el item (con imagen y
// especificaciones opcionales) y una entrada IN con saldo anterior cero.
// Todo ocurre en una única transacción: cualquier fallo revierte el conjunto.
func (uc *UseCase) CreateItem(ctx context.Context, input CreateItemInput) (*CreateItemResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
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
	if err := uc.checkRef(ctx, repository.RefCategory, input.CategoryID, "fkIdCategory"); err != nil {
		return nil, err
	}

	var specValues []entity.ItemTechnicalSpec
	if input.TechnicalSpecs != nil {
		parsed, err := uc.parseSpecValues(ctx, input.TechnicalSpecs)
		if err != nil {
			return nil, err
		}
		specValues = parsed
	}

	now := time.Now()
	correlationID := uuid.New().String()
	var result CreateItemResult

	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		existing, err := repos.Items.FindMatchingForUpdate(ctx, input.Name, input.Brand, input.ExpirationDate, input.LocationID)
		if err != nil {
			return err
		}
		if existing != nil {
			return uc.mergeIntoExisting(ctx, repos, existing, input, now, correlationID, &result)
		}
		return uc.insertNewItem(ctx, repos, input, specValues, now, correlationID, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// mergeIntoExisting suma la cantidad a un item ya bloqueado y registra la
// entrada contra su id.
func (uc *UseCase) mergeIntoExisting(
	ctx context.Context, repos TxRepos,
	existing *entity.Item, input CreateItemInput,
	now time.Time, correlationID string, result *CreateItemResult,
) error {
	rec, err := domaininv.Reconcile(existing.Quantity, input.Quantity, false)
	if err != nil {
		return err
	}
	if err := repos.Items.UpdateQuantity(ctx, existing.ID, rec.NewQuantity); err != nil {
		return err
	}
	if err := repos.Ledger.Create(ctx, &entity.Transaction{
		CorrelationID:     correlationID,
		UserID:            input.UserID,
		ItemID:            &existing.ID,
		ItemType:          entity.SubjectItem,
		ActionDescription: rec.Action,
		QuantityChange:    rec.QuantityChange,
		OldQuantity:       existing.Quantity,
		NewQuantity:       rec.NewQuantity,
		TransactionDate:   now,
	}); err != nil {
		return err
	}
	*result = CreateItemResult{
		ItemID:         existing.ID,
		Merged:         true,
		Action:         rec.Action,
		OldQuantity:    existing.Quantity,
		NewQuantity:    rec.NewQuantity,
		QuantityChange: rec.QuantityChange,
	}
	return nil
}

// insertNewItem inserta el item nuevo con su imagen y especificaciones y
// registra la entrada IN con saldo anterior cero.
func (uc *UseCase) insertNewItem(
	ctx context.Context, repos TxRepos,
	input CreateItemInput, specValues []entity.ItemTechnicalSpec,
	now time.Time, correlationID string, result *CreateItemResult,
) error {
	rec, err := domaininv.ReconcileCreation(input.Quantity)
	if err != nil {
		return err
	}

	var imageID *int64
	if len(input.Image) > 0 {
		id, err := repos.Images.Create(ctx, &entity.Image{Content: input.Image, MimeType: input.ImageMimeType})
		if err != nil {
			return err
		}
		imageID = &id
	}

	item := &entity.Item{
		Name:           input.Name,
		Aliases:        input.Aliases,
		Brand:          input.Brand,
		Description:    input.Description,
		SapCode:        input.SapCode,
		CategoryID:     input.CategoryID,
		Quantity:       rec.NewQuantity,
		ExpirationDate: input.ExpirationDate,
		BatchCode:      input.BatchCode,
		LocationID:     input.LocationID,
		ImageID:        imageID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := repos.Items.Create(ctx, item); err != nil {
		return err
	}

	if len(specValues) > 0 {
		for i := range specValues {
			specValues[i].ItemID = item.ID
		}
		if err := repos.Specs.SetItemValues(ctx, item.ID, specValues); err != nil {
			return err
		}
	}

	if err := repos.Ledger.Create(ctx, &entity.Transaction{
		CorrelationID:     correlationID,
		UserID:            input.UserID,
		ItemID:            &item.ID,
		ItemType:          entity.SubjectItem,
		ActionDescription: rec.Action,
		QuantityChange:    rec.QuantityChange,
		OldQuantity:       decimal.Zero,
		NewQuantity:       rec.NewQuantity,
		TransactionDate:   now,
	}); err != nil {
		return err
	}

	*result = CreateItemResult{
		ItemID:         item.ID,
		Action:         rec.Action,
		OldQuantity:    decimal.Zero,
		NewQuantity:    rec.NewQuantity,
		QuantityChange: rec.QuantityChange,
	}
	return nil
}
