package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter and aggregate.
const (
	FieldOperation  = "operation"
	FieldClassifier = "classifier"
	FieldDocuments  = "documents"
	FieldVocabSize  = "vocab_size"
	FieldClasses    = "classes"
	FieldMetric     = "metric"
	FieldScore      = "score"
	FieldFold       = "fold"
	FieldRunID      = "run_id"
	FieldDuration   = "duration_ms"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldCount      = "count"
	FieldCategory   = "category"
	FieldError      = "error"
)
