package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldOutputFile = "output_file"
	FieldDirectory  = "directory"
	FieldPhone      = "phone"
	FieldToken      = "token"
	FieldLine       = "line"
	FieldCount      = "count"
	FieldMode       = "mode"
	FieldFailed     = "failed"
	FieldFormat     = "format"
)
