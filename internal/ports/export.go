package ports

import "lockstep/internal/types"

type ExportPort interface {
	WriteGraphJSON(report types.GraphReport) error
	WriteGraphYAML(report types.GraphReport) error
	WriteGraphDOT(report types.GraphReport) error
}
