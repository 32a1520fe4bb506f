package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yurifrl/concilia/pkg/config"
	"github.com/yurifrl/concilia/pkg/parser"
	"github.com/yurifrl/concilia/pkg/writer"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	require.NoError(t, workbook.SaveAs(path))
}

func newTestProcessor() *Processor {
	return NewProcessor(&config.Config{Saida: "conciliacao_saida.xlsx"}, log.Default())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	banco := filepath.Join(dir, "banco.xlsx")
	erp := filepath.Join(dir, "conexa.xlsx")
	saida := filepath.Join(dir, "conciliacao.xlsx")

	writeWorkbook(t, banco, [][]interface{}{
		{"Tipo", "Protocolo", "Data", "Valor"},
		{"PIX", "ABC123", "17/03/2025", "-2327,00"},
		{"TED", "", "19/03/2025", "42000,00"},
		{"", "", "20/03/2025", "-999,99"},
		{"", "", "", "not a number"},
	})
	writeWorkbook(t, erp, [][]interface{}{
		{"Quitação", "Valor", "Fornecedor"},
		{"16/03/2025", "2327,00", "CraftCorner Supplies"},
	})

	report, err := newTestProcessor().Run(banco, erp, saida)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total())
	assert.Equal(t, 1, report.Matched)
	assert.Equal(t, 1, report.Unmatched)
	assert.Equal(t, 1, report.Inflows)
	assert.Equal(t, 1, report.Invalid)

	workbook, err := excelize.OpenFile(saida)
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{writer.SheetName}, workbook.GetSheetList())

	rows, err := workbook.GetRows(writer.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Conciliado", rows[1][7])
	assert.Equal(t, "CraftCorner Supplies", rows[1][6])
	assert.Equal(t, "Entrada no Banco", rows[2][7])
	assert.Equal(t, "Não conciliado", rows[3][7])
	assert.Equal(t, "Zero ou inválido", rows[4][7])
}

func TestRunMissingRequiredColumnWritesNothing(t *testing.T) {
	dir := t.TempDir()
	banco := filepath.Join(dir, "banco.xlsx")
	erp := filepath.Join(dir, "conexa.xlsx")
	saida := filepath.Join(dir, "conciliacao.xlsx")

	writeWorkbook(t, banco, [][]interface{}{
		{"Tipo", "Data"},
		{"PIX", "17/03/2025"},
	})
	writeWorkbook(t, erp, [][]interface{}{
		{"Quitação", "Valor"},
		{"16/03/2025", "100,00"},
	})

	_, err := newTestProcessor().Run(banco, erp, saida)
	require.Error(t, err)

	var missingErr *parser.MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"Valor"}, missingErr.Missing)

	// Fatal errors must not leave a partial output file behind.
	_, statErr := os.Stat(saida)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	erp := filepath.Join(dir, "conexa.xlsx")
	writeWorkbook(t, erp, [][]interface{}{{"Quitação", "Valor"}})

	_, err := newTestProcessor().Run(filepath.Join(dir, "nope.xlsx"), erp, filepath.Join(dir, "out.xlsx"))
	require.Error(t, err)
}
