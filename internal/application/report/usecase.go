package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LotLine línea de lote dentro de una fila del reporte.
type LotLine struct {
	LotNumber      int
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	Location       string
}

// StockRow fila del reporte de existencias: un item con sus lotes.
type StockRow struct {
	Name           string
	Brand          string
	SapCode        string
	Category       string
	Location       string
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	Lots           []LotLine
}

// StockReport datos completos del reporte.
type StockReport struct {
	GeneratedAt time.Time
	Rows        []StockRow
	Total       decimal.Decimal
}

// StockPDFGenerator puerto de renderizado del reporte a PDF.
type StockPDFGenerator interface {
	GenerateStockReport(ctx context.Context, rep *StockReport) ([]byte, error)
}

// UseCase arma el reporte de existencias y lo renderiza.
type UseCase struct {
	items      repository.ItemRepository
	lots       repository.LotRepository
	locations  repository.LocationRepository
	categories repository.CategoryRepository
	pdf        StockPDFGenerator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	items repository.ItemRepository,
	lots repository.LotRepository,
	locations repository.LocationRepository,
	categories repository.CategoryRepository,
	pdf StockPDFGenerator,
) *UseCase {
	return &UseCase{items: items, lots: lots, locations: locations, categories: categories, pdf: pdf}
}

// maxReportRows acota el reporte; más allá de esto el PDF deja de ser útil.
const maxReportRows = 5000

// GenerateStockPDF construye el reporte de existencias actual y devuelve el PDF.
func (uc *UseCase) GenerateStockPDF(ctx context.Context) ([]byte, error) {
	rep, err := uc.buildReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(ctx, rep)
}

func (uc *UseCase) buildReport(ctx context.Context) (*StockReport, error) {
	locNames, err := uc.locationNames(ctx)
	if err != nil {
		return nil, err
	}
	catNames, err := uc.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	items, err := uc.items.List(ctx, maxReportRows, 0)
	if err != nil {
		return nil, err
	}

	rep := &StockReport{GeneratedAt: time.Now(), Total: decimal.Zero}
	for _, it := range items {
		row := StockRow{
			Name:           it.Name,
			Brand:          it.Brand,
			SapCode:        it.SapCode,
			Category:       catNames[it.CategoryID],
			Location:       locNames[it.LocationID],
			Quantity:       it.Quantity,
			ExpirationDate: it.ExpirationDate,
		}
		lots, err := uc.lots.ListByItem(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		for _, l := range lots {
			row.Lots = append(row.Lots, LotLine{
				LotNumber:      l.LotNumber,
				Quantity:       l.Quantity,
				ExpirationDate: l.ExpirationDate,
				Location:       locNames[l.LocationID],
			})
		}
		rep.Rows = append(rep.Rows, row)
		rep.Total = rep.Total.Add(it.Quantity)
	}
	return rep, nil
}

func (uc *UseCase) locationNames(ctx context.Context) (map[int64]string, error) {
	list, err := uc.locations.List(ctx, maxReportRows, 0)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(list))
	for _, l := range list {
		names[l.ID] = l.Name
	}
	return names, nil
}

func (uc *UseCase) categoryNames(ctx context.Context) (map[int64]string, error) {
	list, err := uc.categories.List(ctx, maxReportRows, 0)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(list))
	for _, c := range list {
		names[c.ID] = c.Name
	}
	return names, nil
}
