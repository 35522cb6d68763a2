package files

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "summary"

// WriteXLSX writes the working set to a sheet named after the category plus a summary sheet.
func WriteXLSX(w io.Writer, ds *domain.Dataset) error {
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := string(ds.Params.Category)
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range ds.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := xlsxRow(r)
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := wb.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := writeSummary(wb, ds); err != nil {
		return err
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func xlsxRow(r domain.YoYRecord) []interface{} {
	row := []interface{}{
		r.Date.Format(time.DateOnly),
		string(r.Event),
		string(r.Weather),
		r.EventMultiplier,
		r.Customers,
		r.AverageSpend,
		r.Revenue,
		r.PriorDate.Format(time.DateOnly),
		nil,
		nil,
		nil,
	}
	if r.PriorCustomers != nil {
		row[8] = *r.PriorCustomers
	}
	if r.PriorRevenue != nil {
		row[9] = *r.PriorRevenue
	}
	if r.RevenueYoY.Valid {
		row[10], _ = r.RevenueYoY.Decimal.Float64()
	}
	return row
}

func writeSummary(wb *excelize.File, ds *domain.Dataset) error {
	yoy := ""
	if ds.Summary.LatestRevenueYoY.Valid {
		yoy = ds.Summary.LatestRevenueYoY.Decimal.StringFixed(1)
	}
	rows := [][]interface{}{
		{"category", string(ds.Params.Category)},
		{"period_start", ds.Period.Start.Format(time.DateOnly)},
		{"period_end", ds.Period.End.Format(time.DateOnly)},
		{"rows", len(ds.Records)},
		{"latest_date", ds.Summary.LatestDate.Format(time.DateOnly)},
		{"latest_revenue", ds.Summary.LatestRevenue},
		{"latest_revenue_yoy_pct", yoy},
		{"latest_customers", ds.Summary.LatestCustomers},
		{"event_days", ds.Summary.EventDays},
	}
	for i, row := range rows {
		if err := wb.SetSheetRow(summarySheet, "A"+strconv.Itoa(i+1), &row); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}
