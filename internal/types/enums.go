package types

type RangeEngine string

const (
	RangeEngineSemver RangeEngine = "semver"
	RangeEnginePep440 RangeEngine = "pep440"
	RangeEngineDeb    RangeEngine = "deb"
)

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
	ExportFormatDOT  ExportFormat = "dot"
)
