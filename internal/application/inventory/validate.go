package inventory

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// checkRef verifica que la referencia exista antes de escribir (fail-fast).
// Un id no positivo es un error de validación, distinto de una referencia
// inexistente; ambos identifican el campo que falló.
func (uc *UseCase) checkRef(ctx context.Context, ref repository.Reference, id int64, field string) error {
	if id <= 0 {
		return fmt.Errorf("%w: el campo %s debe ser un id válido", domain.ErrInvalidInput, field)
	}
	ok, err := uc.checker.Exists(ctx, ref, id)
	if err != nil {
		return fmt.Errorf("verificar %s: %w", field, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s=%d no existe", domain.ErrInvalidReference, field, id)
	}
	return nil
}

// parseSpecValues valida el payload de especificaciones técnicas: mapa no
// vacío con claves numéricas (ids de especificación) y valores no nulos; los
// ids desconocidos se rechazan en una sola consulta por lote, reportándolos.
func (uc *UseCase) parseSpecValues(ctx context.Context, raw map[string]*string) ([]entity.ItemTechnicalSpec, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: technical_specs no puede estar vacío", domain.ErrInvalidInput)
	}

	values := make([]entity.ItemTechnicalSpec, 0, len(raw))
	ids := make([]int64, 0, len(raw))
	for key, val := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: clave de especificación no numérica: %q", domain.ErrInvalidInput, key)
		}
		if val == nil {
			return nil, fmt.Errorf("%w: la especificación %d tiene valor nulo", domain.ErrInvalidInput, id)
		}
		ids = append(ids, id)
		values = append(values, entity.ItemTechnicalSpec{SpecID: id, Value: *val})
	}

	missing, err := uc.checker.MissingSpecIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("verificar especificaciones: %w", err)
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return nil, fmt.Errorf("%w: especificaciones inexistentes: %v", domain.ErrInvalidReference, missing)
	}

	sort.Slice(values, func(i, j int) bool { return values[i].SpecID < values[j].SpecID })
	return values, nil
}
