package domain

// RowColumns is the fixed width of a ledger row (columns A through F).
const RowColumns = 6

// ReceiptColumn is the 0-based column index of the receipt cell within a
// ledger row (column E).
const ReceiptColumn = 4

// RowRecord is one expense line for the grouped table: a fixed 6-field tuple
// written positionally and verbatim. No type coercion happens here; the
// Sheets API's own USER_ENTERED parsing interprets dates and amounts.
type RowRecord struct {
	Date        string
	Vendor      string
	Amount      string
	Method      string
	Receipt     string
	Description string
}

// Values returns the row in column order, ready for a values append call.
func (r RowRecord) Values() []any {
	return []any{r.Date, r.Vendor, r.Amount, r.Method, r.Receipt, r.Description}
}
