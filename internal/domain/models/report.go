package models

// PeriodKind selects the reporting window.
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// Period describes the reporting window requested by the user. Date is a
// yyyy-mm-dd string for day/week periods and a three-letter month key
// (e.g. "jan") for month periods.
type Period struct {
	Kind PeriodKind `json:"period" binding:"required"`
	Date string     `json:"date" binding:"required"`
}

// ReportData bundles the record sets a report is assembled from, as returned
// by the backend's pdfreport endpoint.
type ReportData struct {
	Milk        []MilkCollection `json:"milk"`
	Productions []Production     `json:"productions"`
	Sales       []Sale           `json:"sales"`
}

// BlockKind discriminates the content block variants within a section.
type BlockKind string

const (
	BlockHeading BlockKind = "heading"
	BlockColumns BlockKind = "columns"
	BlockTable   BlockKind = "table"
)

// Table is a rendered table: a header row plus data rows. The leftmost
// column is a presentational 1-based row index recomputed on every assembly.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Block is one content element inside a report section. Exactly one of
// Text, Columns or Table is populated depending on Kind.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Columns []string  `json:"columns,omitempty"`
	Table   *Table    `json:"table,omitempty"`
}

// Section is a titled group of blocks. PageBreak asks the renderer to start
// the section on a fresh page.
type Section struct {
	Title     string  `json:"title"`
	PageBreak bool    `json:"page_break"`
	Blocks    []Block `json:"blocks"`
}

// DocInfo carries the PDF document metadata.
type DocInfo struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
}

// Header is the branded banner at the top of the first page.
type Header struct {
	Brand   string `json:"brand"`
	Address string `json:"address"`
	Title   string `json:"title"`
	Period  string `json:"period"`
}

// Document is the declarative report description handed to the PDF
// renderer. It carries content and structure only; layout and pagination
// are the renderer's business.
type Document struct {
	Info     DocInfo   `json:"info"`
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}
