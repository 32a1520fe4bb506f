package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yurifrl/concilia/pkg/reconcile"
)

// SheetName is the single sheet produced in the output workbook.
const SheetName = "Conciliacao"

var header = []interface{}{
	"Data Banco",
	"Valor Banco",
	"Tipo Banco",
	"Protocolo Banco",
	"Data ERP Quitação",
	"Valor ERP",
	"Fornecedor ERP",
	"Status",
}

// Write saves the reconciliation rows to path as a single-sheet workbook.
// Dates go out as real datetime cells (blank when absent) and amounts as
// numbers (blank when absent), so the styling pass can format them.
func Write(path string, rows []reconcile.Row) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	index, err := workbook.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	workbook.SetActiveSheet(index)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error removing default sheet: %w", err)
	}

	if err := workbook.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(header))
		if !row.Data.IsZero() {
			cells[0] = row.Data
		}
		if row.Valor.Valid {
			cells[1] = row.Valor.Value
		}
		cells[2] = row.Tipo
		cells[3] = row.Protocolo
		if !row.ErpQuitacao.IsZero() {
			cells[4] = row.ErpQuitacao
		}
		if row.ErpValor.Valid {
			cells[5] = row.ErpValor.Value
		}
		cells[6] = row.ErpFornecedor
		cells[7] = row.Status.String()

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error computing cell name: %w", err)
		}
		if err := workbook.SetSheetRow(SheetName, cell, &cells); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+1, err)
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("error saving %s: %w", path, err)
	}
	return nil
}
