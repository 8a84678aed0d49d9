package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every format in the order usage text shows them.
var Formats = []string{FormatText, FormatTSV, FormatTable, FormatJSON, FormatJSONL}
