package models

import "time"

// BankRecord is one normalized row from the bank statement export. Data is
// the zero time when the cell was blank or did not parse as a date.
type BankRecord struct {
	Tipo      string
	Protocolo string
	Data      time.Time
	Valor     Amount
}

// ErpRecord is one normalized payment row from the Conexa export. Only
// records with a positive Valor are eligible match candidates.
type ErpRecord struct {
	Quitacao   time.Time
	Valor      Amount
	Fornecedor string
}
