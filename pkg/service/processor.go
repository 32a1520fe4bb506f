package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"

	"github.com/yurifrl/concilia/pkg/config"
	"github.com/yurifrl/concilia/pkg/models"
	"github.com/yurifrl/concilia/pkg/parser"
	"github.com/yurifrl/concilia/pkg/reconcile"
	"github.com/yurifrl/concilia/pkg/writer"
)

type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		parser: parser.New(logger),
	}
}

// Run reconciles one bank/ERP file pair and writes the annotated sheet to
// saida. Both inputs are fully read and validated before the output file
// is created, so a failed run leaves nothing behind.
func (p *Processor) Run(banco, erp, saida string) (*reconcile.Report, error) {
	bankRecords, err := p.readBank(banco)
	if err != nil {
		return nil, err
	}
	erpRecords, err := p.readErp(erp)
	if err != nil {
		return nil, err
	}

	p.logger.Info("reconciling", "bank_rows", len(bankRecords), "erp_rows", len(erpRecords))
	if p.config.Verbose {
		p.logger.Debug("normalized records",
			"bank", pp.Sprint(bankRecords),
			"erp", pp.Sprint(erpRecords))
	}

	report := reconcile.Build(bankRecords, erpRecords)

	if err := writer.Write(saida, report.Rows); err != nil {
		return nil, fmt.Errorf("error writing output file: %w", err)
	}
	if err := writer.Style(saida); err != nil {
		return nil, fmt.Errorf("error styling output file: %w", err)
	}

	p.logger.Info("reconciliation written",
		"output", saida,
		"matched", report.Matched,
		"unmatched", report.Unmatched,
		"inflows", report.Inflows,
		"invalid", report.Invalid)
	return report, nil
}

func (p *Processor) readBank(path string) ([]models.BankRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank file: %w", err)
	}
	return p.parser.ReadBank(data, filepath.Base(path))
}

func (p *Processor) readErp(path string) ([]models.ErpRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read erp file: %w", err)
	}
	return p.parser.ReadErp(data, filepath.Base(path))
}
