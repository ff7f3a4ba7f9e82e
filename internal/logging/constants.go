package logging

// Standardized field names for structured logging.
// Keep these stable: they are what people grep for in the run logs.
const (
	FieldFile       = "file_path"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputDir   = "input_dir"
	FieldOutputDir  = "output_dir"
	FieldOutputFile = "output_file"
	FieldSheet      = "sheet"
	FieldHeader     = "header"
	FieldDropped    = "dropped"
	FieldGroups     = "groups"
)
