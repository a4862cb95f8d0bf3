// Command summarize prints the derived summary of a transaction batch file.
//
// The file is YAML or JSON:
//
//	monthly_income: "4000"
//	transactions:
//	  - {amount: "-45.10", date: "2024-01-03", category: "Food"}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/finflow/backend/internal/domain/aggregation"
	"github.com/finflow/backend/internal/domain/entity"
	"github.com/finflow/backend/internal/integration/entrypoint/dto"
)

type batchFile struct {
	MonthlyIncome string        `yaml:"monthly_income"`
	Transactions  []batchRecord `yaml:"transactions"`
}

type batchRecord struct {
	Amount      string `yaml:"amount"`
	Date        string `yaml:"date"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

func main() {
	file := flag.String("file", "", "batch file (YAML or JSON); reads stdin when empty")
	income := flag.String("income", "", "monthly income, overrides the file")
	span := flag.String("span", "all", "month-count basis: all or expenses")
	flag.Parse()

	if err := run(*file, *income, *span, os.Stdin, os.Stdout); err != nil {
		slog.Error("Summarize failed", "error", err)
		os.Exit(1)
	}
}

func run(path, income, span string, stdin io.Reader, out io.Writer) error {
	basis, err := aggregation.ParseSpanBasis(span)
	if err != nil {
		return err
	}

	in := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		in = f
	}

	batch, err := loadBatch(in)
	if err != nil {
		return err
	}
	if income != "" {
		batch.MonthlyIncome = income
	}

	summary := aggregation.ComputeSummary(batch.raw(), batch.MonthlyIncome, aggregation.WithSpanBasis(basis))

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToSummaryResponse(summary))
}

// loadBatch decodes YAML, which also accepts JSON documents.
func loadBatch(r io.Reader) (*batchFile, error) {
	var batch batchFile
	if err := yaml.NewDecoder(r).Decode(&batch); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode batch file: %w", err)
	}
	return &batch, nil
}

func (b *batchFile) raw() []entity.RawTransaction {
	records := make([]entity.RawTransaction, len(b.Transactions))
	for i, t := range b.Transactions {
		records[i] = entity.RawTransaction{
			Amount:      t.Amount,
			Date:        t.Date,
			Category:    t.Category,
			Description: t.Description,
		}
	}
	return records
}
