package reportgen

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
	"github.com/sarvasvaa/dairyops/internal/service/analytics"
)

// ErrNoData is returned when report assembly is requested without data.
// Assembly is all-or-nothing: callers must guarantee data presence, there
// is no partial document.
var ErrNoData = errors.New("report data missing")

const (
	brandName    = "Sarvasvaa Milk & Milk Production"
	brandAddress = "Khandobachiwadi, Mohol, Solapur, Maharashtra"
	brandAuthor  = "Sarvasvaa Dairy"
)

// Assemble composes the report document tree for the given period: branded
// header, milk table, one block group per production batch, sales table.
// Row numbers are presentational, 1-based and recomputed on every call.
func Assemble(data *models.ReportData, period models.Period) (*models.Document, error) {
	if data == nil {
		return nil, ErrNoData
	}

	label, err := PeriodLabel(period, time.Now())
	if err != nil {
		return nil, err
	}
	title := periodTitle(period.Kind)

	doc := &models.Document{
		Info: models.DocInfo{
			Title:   fmt.Sprintf("Sarvasvaa Dairy %s (%s)", title, period.Date),
			Author:  brandAuthor,
			Subject: "Automated Dairy Report",
		},
		Header: models.Header{
			Brand:   brandName,
			Address: brandAddress,
			Title:   title,
			Period:  label,
		},
		Sections: []models.Section{
			{
				Title:  "Milk Collections",
				Blocks: []models.Block{milkTable(data.Milk)},
			},
			{
				Title:     "Productions",
				PageBreak: true,
				Blocks:    productionBlocks(data.Productions),
			},
			{
				Title:     "Sales",
				PageBreak: true,
				Blocks:    []models.Block{salesTable(data.Sales)},
			},
		},
	}

	return doc, nil
}

func periodTitle(kind models.PeriodKind) string {
	switch kind {
	case models.PeriodDay:
		return "Daily Report"
	case models.PeriodWeek:
		return "Weekly Report"
	case models.PeriodMonth:
		return "Monthly Report"
	}
	return "Report"
}

func milkTable(milk []models.MilkCollection) models.Block {
	table := &models.Table{
		Headers: []string{"No.", "Date", "Time", "Quantity (L)", "Rate", "Milk Type", "Fat", "SNF"},
	}
	for i, m := range milk {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			m.Date, m.CollectionTime, m.QuantityLtr,
			m.CostPerLitre, m.MilkType, m.Fat, m.SNF,
		})
	}
	return models.Block{Kind: models.BlockTable, Table: table}
}

func productionBlocks(productions []models.Production) []models.Block {
	var blocks []models.Block
	for _, p := range productions {
		blocks = append(blocks, models.Block{
			Kind: models.BlockHeading,
			Text: fmt.Sprintf("Batch #%s — %s", p.BatchNo, p.Date),
		})
		blocks = append(blocks, models.Block{
			Kind: models.BlockColumns,
			Columns: []string{
				fmt.Sprintf("Milk Used: %s L", p.MilkUsedLtr),
				fmt.Sprintf("Skim Milk: %s L", p.SeprationMilkLtr),
				fmt.Sprintf("Whole Milk: %s L", p.WholeMilkLtr),
			},
		})

		table := &models.Table{
			Headers: []string{"No.", "Product", "Qty", "Raw Materials"},
		}
		for i, item := range p.Products {
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%d", i+1),
				item.ProductName,
				item.Quantity,
				rawMaterialsCell(item.RawMaterials),
			})
		}
		blocks = append(blocks, models.Block{Kind: models.BlockTable, Table: table})
	}
	return blocks
}

func rawMaterialsCell(materials []models.RawMaterialUsage) string {
	parts := make([]string, 0, len(materials))
	for _, rm := range materials {
		parts = append(parts, fmt.Sprintf("%s: %.2f %s",
			strings.TrimSpace(rm.Name),
			analytics.Quantity(rm.QuantityUsed),
			strings.TrimSpace(rm.Unit)))
	}
	return strings.Join(parts, ", ")
}

func salesTable(sales []models.Sale) models.Block {
	table := &models.Table{
		Headers: []string{"No.", "Date", "Customer", "Product", "Qty", "Rate", "Total", "Status"},
	}
	for i, s := range sales {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Date, s.Customer, s.ProductName,
			s.Quantity, s.Rate, s.Total, s.PaymentStatus,
		})
	}
	return models.Block{Kind: models.BlockTable, Table: table}
}

// DownloadName is the attachment file name for on-demand report downloads.
func DownloadName(period models.Period) string {
	return fmt.Sprintf("report_%s_%s.pdf", period.Kind, period.Date)
}

// ArchiveName is the file name used for scheduler-generated reports.
func ArchiveName(period models.Period) string {
	return fmt.Sprintf("Sarvasvaa-%s-report-%s.pdf", period.Kind, period.Date)
}
