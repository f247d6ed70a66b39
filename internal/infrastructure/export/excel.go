// Package export genera los reportes descargables del tablero: el catálogo
// en Excel y el histórico de órdenes de trabajo en PDF.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CatalogExcel arma un libro .xlsx con el catálogo completo. La columna de
// estado marca Low/Critical con el mismo clasificador que usa el tablero.
func CatalogExcel(materials []*entity.Material) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"ID",
		"Material",
		"Categoría",
		"Cantidad disponible",
		"Umbral de stock bajo",
		"Estado",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: cabecera: %w", err)
	}

	row := 2
	for _, m := range materials {
		status := "OK"
		switch {
		case m.IsCritical():
			status = "Critical"
		case m.IsLowStock():
			status = "Low"
		}
		excelRow := []interface{}{
			m.ID,
			m.Name,
			m.CategoryName,
			m.AvailableQuantity.String(),
			m.LowStockThreshold.String(),
			status,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("export: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("export: fila %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("export: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
