package server

import "context"

// UDFConverter translates a BigQuery UDF body into PySpark source.
// Implementations typically call an external model service; none ships with
// this module, so the udf mode reports a diagnostic until one is installed
// via WithUDFConverter.
type UDFConverter interface {
	ConvertUDF(ctx context.Context, source string) (string, error)
}
