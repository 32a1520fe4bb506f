package reconcile

// Package reconcile pairs bank statement outflows with the Conexa ERP
// payments they correspond to. It is intentionally isolated from any
// file/CLI concern so the matching policy can be tested on plain records.
//
// The policy is greedy by bank input order with no backtracking: once a
// bank row claims an ERP payment that assignment is final, even if a later
// bank row would have been a nicer fit.

import (
	"time"

	"github.com/yurifrl/concilia/pkg/models"
)

// Status classifies one bank row after matching.
type Status int

const (
	// Conciliado: an ERP payment with the same absolute amount was found
	// and consumed.
	Conciliado Status = iota
	// NaoConciliado: an outflow with no remaining ERP candidate.
	NaoConciliado
	// EntradaNoBanco: a positive bank amount; inflows are never matched.
	EntradaNoBanco
	// ZeroOuInvalido: the bank amount cell was missing or unparseable.
	ZeroOuInvalido
)

// String returns the label written to the output sheet. These are the
// exact strings downstream spreadsheets filter on, so they stay in
// Portuguese.
func (s Status) String() string {
	switch s {
	case Conciliado:
		return "Conciliado"
	case NaoConciliado:
		return "Não conciliado"
	case EntradaNoBanco:
		return "Entrada no Banco"
	case ZeroOuInvalido:
		return "Zero ou inválido"
	}
	return ""
}

// Row pairs one bank record with the ERP payment it reconciled against,
// if any. The Erp fields are only populated when Status is Conciliado.
type Row struct {
	Data      time.Time
	Valor     models.Amount
	Tipo      string
	Protocolo string

	ErpQuitacao   time.Time
	ErpValor      models.Amount
	ErpFornecedor string

	Status Status
}

// Report holds one Row per bank record, in bank input order, plus
// per-status counters for summaries.
type Report struct {
	Rows []Row

	Matched   int
	Unmatched int
	Inflows   int
	Invalid   int
}

// Total returns the number of bank records processed.
func (r *Report) Total() int {
	return len(r.Rows)
}

// Build runs the matching pass. ERP records with a positive amount are
// indexed by exact value into FIFO queues; same-amount payments keep
// their original relative order so the earliest-listed one is consumed
// first. Each ERP record is handed out at most once.
func Build(bank []models.BankRecord, erp []models.ErpRecord) *Report {
	queues := make(map[float64][]int)
	for i, e := range erp {
		if e.Valor.Positive() {
			queues[e.Valor.Value] = append(queues[e.Valor.Value], i)
		}
	}

	report := &Report{Rows: make([]Row, 0, len(bank))}
	for _, b := range bank {
		row := Row{
			Data:      b.Data,
			Valor:     b.Valor,
			Tipo:      b.Tipo,
			Protocolo: b.Protocolo,
		}

		switch {
		case !b.Valor.Valid:
			row.Status = ZeroOuInvalido
			report.Invalid++
		case b.Valor.Value > 0:
			row.Status = EntradaNoBanco
			report.Inflows++
		default:
			// Outflows, and a literal zero, look for an ERP payment of
			// the same absolute amount. A zero never finds one since only
			// positive amounts are indexed.
			alvo := b.Valor.Abs()
			if queue := queues[alvo]; len(queue) > 0 {
				matched := erp[queue[0]]
				queues[alvo] = queue[1:]

				row.ErpQuitacao = matched.Quitacao
				row.ErpValor = matched.Valor
				row.ErpFornecedor = matched.Fornecedor
				row.Status = Conciliado
				report.Matched++
			} else {
				row.Status = NaoConciliado
				report.Unmatched++
			}
		}

		report.Rows = append(report.Rows, row)
	}

	return report
}
