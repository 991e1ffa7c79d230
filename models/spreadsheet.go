package models

// Spreadsheet mirrors the document metadata returned by the tabular source:
// just enough to list the available tabs.
type Spreadsheet struct {
	SpreadsheetID string  `json:"spreadsheetId"`
	Sheets        []Sheet `json:"sheets"`
}

type Sheet struct {
	Properties SheetProperties `json:"properties"`
}

type SheetProperties struct {
	Title string `json:"title"`
}

// ValueRange is a rectangular block of cell values from one tab. Rows are
// ragged: trailing empty cells are simply absent.
type ValueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}
