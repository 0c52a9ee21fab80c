// Package schemas embeds the JSON Schemas for artifacts written by the CLI.
package schemas

import _ "embed"

// Report is the JSON Schema for the --report output.
//
//go:embed report.schema.json
var Report []byte

// ReportName identifies the report schema in error messages.
const ReportName = "report.schema.json"
