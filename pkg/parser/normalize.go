package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yurifrl/concilia/pkg/models"
)

// Table is a decoded sheet: a header row plus data rows, all as strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column names expected in the inputs. Bank files need Data and Valor;
// Conexa files need Quitação and Valor. The rest is optional.
const (
	colData       = "Data"
	colValor      = "Valor"
	colTipo       = "Tipo"
	colProtocolo  = "Protocolo"
	colQuitacao   = "Quitação"
	colFornecedor = "Fornecedor"
)

// MissingColumnsError is the only fatal normalization failure: a required
// column is absent from an input table. It carries every missing column
// and everything that was actually found so the user can fix the export.
type MissingColumnsError struct {
	File    string
	Missing []string
	Found   []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns %v, found columns %v", e.File, e.Missing, e.Found)
}

// NormalizeBank converts a decoded bank table into bank records.
// Malformed cells degrade to sentinels instead of failing the run.
func NormalizeBank(file string, t *Table) ([]models.BankRecord, error) {
	if err := t.requireColumns(file, colData, colValor); err != nil {
		return nil, err
	}

	data := t.columnIndex(colData)
	valor := t.columnIndex(colValor)
	tipo := t.columnIndex(colTipo)
	protocolo := t.columnIndex(colProtocolo)

	records := make([]models.BankRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, models.BankRecord{
			Tipo:      t.cell(row, tipo),
			Protocolo: t.cell(row, protocolo),
			Data:      parseData(t.cell(row, data)),
			Valor:     parseValor(t.cell(row, valor)),
		})
	}
	return records, nil
}

// NormalizeErp converts a decoded Conexa table into ERP records.
func NormalizeErp(file string, t *Table) ([]models.ErpRecord, error) {
	if err := t.requireColumns(file, colQuitacao, colValor); err != nil {
		return nil, err
	}

	quitacao := t.columnIndex(colQuitacao)
	valor := t.columnIndex(colValor)
	fornecedor := t.columnIndex(colFornecedor)

	records := make([]models.ErpRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, models.ErpRecord{
			Quitacao:   parseData(t.cell(row, quitacao)),
			Valor:      parseValor(t.cell(row, valor)),
			Fornecedor: t.cell(row, fornecedor),
		})
	}
	return records, nil
}

// columnIndex finds the named column, trimming header cells and matching
// case-insensitively. Returns -1 when absent.
func (t *Table) columnIndex(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func (t *Table) requireColumns(file string, names ...string) error {
	var missing []string
	for _, name := range names {
		if t.columnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	found := make([]string, len(t.Header))
	for i, h := range t.Header {
		found[i] = strings.TrimSpace(h)
	}
	return &MissingColumnsError{File: file, Missing: missing, Found: found}
}

// cell returns the trimmed cell at idx, or "" when the column is absent or
// the row is short.
func (t *Table) cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseValor converts a money cell to an Amount. Brazilian exports use a
// comma decimal separator with dots for thousands ("1.234,56"), while
// numeric cells come through with a plain dot decimal. Anything that still
// fails to parse is an absent Amount, not an error.
func parseValor(s string) models.Amount {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	if s == "" {
		return models.Amount{}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Amount{}
	}
	return models.NewAmount(v)
}

// Day-first layouts, matching how the bank and Conexa format dates.
var dateLayouts = []string{
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// parseData converts a date cell, returning the zero time when no layout
// matches.
func parseData(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}
