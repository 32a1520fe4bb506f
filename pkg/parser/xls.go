package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// Legacy .xls exports from Brazilian banks come out in cp1252.
func decodeXLS(data []byte) (*Table, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(10000)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}
