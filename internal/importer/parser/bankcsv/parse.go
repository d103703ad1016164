// Package bankcsv parses CSV bank statement exports.
//
// The expected format is a header line followed by records of
// "Date,Payee,Memo,Outflow,Inflow" with dates in DD/MM/YYYY format.
// Exactly one of Outflow and Inflow must be set per line.
package bankcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/my-budget-mate/backend/internal/importer"
	"github.com/my-budget-mate/backend/internal/importer/helpers"
	"github.com/my-budget-mate/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Column indexes of the bank statement export.
const (
	Date = iota
	Payee
	Memo
	Outflow
	Inflow
)

// Parse parses a bank statement CSV for the given account.
func Parse(f io.Reader, account models.Account) ([]importer.TransactionPreview, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	var transactions []importer.TransactionPreview

	// Skip the header line
	_, err := reader.Read()
	if err == io.EOF {
		return []importer.TransactionPreview{}, nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := time.Parse("02/01/2006", record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse time: %w", err))
		}

		t := importer.TransactionPreview{
			Transaction: models.Transaction{
				Date:       date,
				Payee:      record[Payee],
				Note:       record[Memo],
				AccountID:  account.ID,
				ImportHash: helpers.Sha256String(strings.Join(record, ",")),
			},
		}

		// Outflows become negative amounts, inflows positive ones
		if record[Outflow] != "" && record[Inflow] != "" {
			return csvReadError(reader, errors.New("both outflow and inflow are set for the transaction"))
		} else if record[Outflow] == "" && record[Inflow] == "" {
			return csvReadError(reader, errors.New("no amount is set for the transaction"))
		} else if record[Outflow] != "" {
			amount, err := decimal.NewFromString(record[Outflow])
			if err != nil {
				return csvReadError(reader, errors.New("outflow could not be parsed to a decimal"))
			}

			t.Transaction.Amount = amount.Neg()
		} else {
			amount, err := decimal.NewFromString(record[Inflow])
			if err != nil {
				return csvReadError(reader, errors.New("inflow could not be parsed to a decimal"))
			}

			t.Transaction.Amount = amount
		}

		if t.Transaction.Amount.IsZero() {
			return csvReadError(reader, errors.New("the amount for a transaction must not be 0"))
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// csvReadError returns an error including the line of the input the error
// occurred in.
func csvReadError(r *csv.Reader, err error) ([]importer.TransactionPreview, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []importer.TransactionPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
