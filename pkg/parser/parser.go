package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/concilia/pkg/models"
)

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ReadBank decodes a bank statement spreadsheet and normalizes it into
// bank records.
func (p *Parser) ReadBank(data []byte, filename string) ([]models.BankRecord, error) {
	table, err := p.decode(data, filename)
	if err != nil {
		return nil, err
	}
	return NormalizeBank(filename, table)
}

// ReadErp decodes a Conexa payment spreadsheet and normalizes it into ERP
// records.
func (p *Parser) ReadErp(data []byte, filename string) ([]models.ErpRecord, error) {
	table, err := p.decode(data, filename)
	if err != nil {
		return nil, err
	}
	return NormalizeErp(filename, table)
}

func (p *Parser) decode(data []byte, filename string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	p.logger.Debug("decoding spreadsheet", "filename", filename, "ext", ext)

	switch ext {
	case ".xlsx":
		return decodeXLSX(data)
	case ".xls":
		return decodeXLS(data)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}
