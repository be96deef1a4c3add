package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReferenceChecker = (*ReferenceChecker)(nil)

// ReferenceChecker verificación de existencia de claves foráneas. Tabla y
// columna vienen de las referencias declaradas en domain/repository (call
// sites de confianza); el id siempre va como parámetro.
type ReferenceChecker struct {
	q Querier
}

// NewReferenceChecker construye el verificador. Pasar pool o tx (Querier).
func NewReferenceChecker(q Querier) *ReferenceChecker {
	return &ReferenceChecker{q: q}
}

// Exists indica si existe una fila con ese id. Ids no positivos se rechazan
// sin consultar. El error de consulta se devuelve envuelto para que el caller
// lo propague de forma uniforme.
func (c *ReferenceChecker) Exists(ctx context.Context, ref repository.Reference, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, ref.Table, ref.Column)
	var count int
	if err := c.q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return false, fmt.Errorf("check %s.%s: %w", ref.Table, ref.Column, err)
	}
	return count > 0, nil
}

// MissingSpecIDs devuelve los ids de especificaciones técnicas que no existen,
// en una sola consulta por lote.
func (c *ReferenceChecker) MissingSpecIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT wanted.id
		FROM unnest($1::bigint[]) AS wanted(id)
		LEFT JOIN technical_specs ts ON ts.id = wanted.id
		WHERE ts.id IS NULL`
	rows, err := c.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("check technical specs: %w", err)
	}
	defer rows.Close()
	var missing []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan missing spec id: %w", err)
		}
		missing = append(missing, id)
	}
	return missing, rows.Err()
}
