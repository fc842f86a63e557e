package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/spoiledshruu/SaaS-contracts-dashboard/model"
	"github.com/xuri/excelize/v2"
)

// ReportColumns is the fixed header of exported contract reports.
var ReportColumns = []string{
	"Contract ID",
	"Title",
	"Parties",
	"Status",
	"Risk Level",
	"Value",
	"Signed Date",
	"Expiry Date",
}

func reportRow(c model.Contract) []string {
	return []string{
		c.ID,
		c.Name,
		strings.Join(c.Parties, "; "),
		c.Status,
		c.RiskScore,
		c.Value,
		c.StartDate,
		c.ExpiryDate,
	}
}

// BuildCSV renders the contracts as CSV with the fixed 8-column header.
func BuildCSV(contracts []model.Contract) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ReportColumns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, c := range contracts {
		if err := w.Write(reportRow(c)); err != nil {
			return "", fmt.Errorf("write row %s: %w", c.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildXLSX renders the contracts as a single-sheet workbook with the same
// columns as the CSV export.
func BuildXLSX(contracts []model.Contract) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contracts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	header := make([]interface{}, len(ReportColumns))
	for i, col := range ReportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, c := range contracts {
		row := reportRow(c)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %s: %w", c.ID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
