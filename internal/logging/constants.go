package logging

// Standardized field names for structured logging. These constants keep the
// application's log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldCount      = "count"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRow        = "row"
	FieldReason     = "reason"
)
