package writer

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	colorPositive = "008000" // green
	colorNegative = "FF0000" // red
	dateFormat    = "dd/mm/yyyy"
)

var (
	valueColumns = []string{"Valor Banco", "Valor ERP"}
	dateColumns  = []string{"Data Banco", "Data ERP Quitação"}
)

// Style reopens an already written reconciliation sheet, colors the value
// columns by sign and formats the date columns. It operates on the saved
// file rather than the in-memory workbook so presentation stays decoupled
// from the matching logic. Columns are located by header name; missing
// ones are skipped.
func Style(path string) error {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("error reading sheet %s: %w", SheetName, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("sheet %s is empty", SheetName)
	}

	columns := make(map[string]int)
	for i, h := range rows[0] {
		columns[h] = i + 1
	}
	lastRow := len(rows)

	if err := styleValues(workbook, columns, lastRow); err != nil {
		return err
	}
	if err := styleDates(workbook, columns, lastRow); err != nil {
		return err
	}

	return workbook.Save()
}

func styleValues(workbook *excelize.File, columns map[string]int, lastRow int) error {
	positive, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Color: colorPositive}})
	if err != nil {
		return fmt.Errorf("error creating style: %w", err)
	}
	negative, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Color: colorNegative}})
	if err != nil {
		return fmt.Errorf("error creating style: %w", err)
	}

	for _, name := range valueColumns {
		col, ok := columns[name]
		if !ok {
			continue
		}
		for r := 2; r <= lastRow; r++ {
			cell, err := excelize.CoordinatesToCellName(col, r)
			if err != nil {
				return fmt.Errorf("error computing cell name: %w", err)
			}
			raw, err := workbook.GetCellValue(SheetName, cell)
			if err != nil || raw == "" {
				continue
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}

			switch {
			case value > 0:
				err = workbook.SetCellStyle(SheetName, cell, cell, positive)
			case value < 0:
				err = workbook.SetCellStyle(SheetName, cell, cell, negative)
			}
			if err != nil {
				return fmt.Errorf("error styling cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func styleDates(workbook *excelize.File, columns map[string]int, lastRow int) error {
	format := dateFormat
	style, err := workbook.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return fmt.Errorf("error creating date style: %w", err)
	}

	for _, name := range dateColumns {
		col, ok := columns[name]
		if !ok || lastRow < 2 {
			continue
		}
		start, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return fmt.Errorf("error computing cell name: %w", err)
		}
		end, err := excelize.CoordinatesToCellName(col, lastRow)
		if err != nil {
			return fmt.Errorf("error computing cell name: %w", err)
		}
		if err := workbook.SetCellStyle(SheetName, start, end, style); err != nil {
			return fmt.Errorf("error styling column %s: %w", name, err)
		}
	}
	return nil
}
