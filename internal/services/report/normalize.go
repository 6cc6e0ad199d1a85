package report

import (
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// ReportToPoint normalizes a CommonReport into a *write.Point. Everything
// lands in the single "diagnostic_report" measurement, discriminated by the
// report_type tag.
func ReportToPoint(rep CommonReport) *write.Point {
	tags := map[string]string{
		"report_type":    rep.ReportType,
		"source_service": rep.SourceService,
		"severity":       rep.Severity,
	}
	if rep.FieldID != "" {
		tags["field_id"] = rep.FieldID
	}
	if rep.SensorID != "" {
		tags["sensor_id"] = rep.SensorID
	}
	if rep.ImageID != "" {
		tags["image_id"] = rep.ImageID
	}

	fields := map[string]interface{}{}
	for k, v := range rep.Fields {
		fields[k] = v
	}
	// report_id as a field, not a tag: unbounded cardinality
	if rep.ReportID != "" {
		fields["report_id"] = rep.ReportID
	}
	if _, ok := fields["count"]; !ok {
		fields["count"] = int64(1)
	}

	return influxdb2.NewPoint("diagnostic_report", tags, fields, rep.Timestamp)
}
