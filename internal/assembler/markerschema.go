package assembler

import "github.com/fxprof/fxexport/internal/format"

var markerDisplay = []string{"marker-chart", "marker-table", "timeline-overview"}

// markerSchemas returns the fixed catalog of marker schemas, one per
// marker type this tool emits.
func markerSchemas() []format.MarkerSchema {
	field := func(key, label, fmt string) format.MarkerSchemaField {
		return format.MarkerSchemaField{Key: key, Label: label, Format: fmt}
	}

	return []format.MarkerSchema{
		{
			Name:         "TracyZone",
			Display:      markerDisplay,
			ChartLabel:   "{marker.data.name}",
			TooltipLabel: "{marker.data.name}",
			TableLabel:   "{marker.data.name}",
			Description:  "Tracy instrumentation zone",
			ColorField:   "color",
			Fields: []format.MarkerSchemaField{
				field("name", "Name", "unique-string"),
				field("text", "Text", "unique-string"),
				{Key: "color", Label: "Color", Format: "string", Hide: true},
				field("file", "File", "unique-string"),
				field("line", "Line", "integer"),
				field("function", "Function", "unique-string"),
			},
		},
		{
			Name:         "TracyMessage",
			Display:      markerDisplay,
			ChartLabel:   "{marker.data.text}",
			TooltipLabel: "{marker.data.text}",
			TableLabel:   "{marker.data.text}",
			Description:  "Tracy log message",
			ColorField:   "color",
			Fields: []format.MarkerSchemaField{
				field("text", "Message", "unique-string"),
				field("color", "Color", "string"),
			},
		},
		{
			Name:         "TracyLock",
			Display:      markerDisplay,
			ChartLabel:   "{marker.data.name}",
			TooltipLabel: "Lock: {marker.data.name} ({marker.data.operation})",
			TableLabel:   "{marker.data.name}",
			Description:  "Tracy lock contention",
			Fields: []format.MarkerSchemaField{
				field("name", "Lock Name", "unique-string"),
				field("lockId", "Lock ID", "integer"),
				field("operation", "Operation", "string"),
			},
		},
		{
			Name:         "TracyGpuZone",
			Display:      markerDisplay,
			ChartLabel:   "{marker.data.name}",
			TooltipLabel: "GPU: {marker.data.name}",
			TableLabel:   "{marker.data.name}",
			Description:  "Tracy GPU zone",
			Fields: []format.MarkerSchemaField{
				field("name", "Name", "unique-string"),
				field("gpuStart", "GPU Start", "time"),
				field("gpuEnd", "GPU End", "time"),
				field("cpuStart", "CPU Start", "time"),
				field("cpuEnd", "CPU End", "time"),
				field("file", "File", "unique-string"),
				field("line", "Line", "integer"),
				field("function", "Function", "unique-string"),
			},
		},
		{
			Name:         "TracyFrame",
			Display:      markerDisplay,
			ChartLabel:   "Frame {marker.data.frameNumber}",
			TooltipLabel: "Frame {marker.data.frameNumber} ({marker.data.fps} FPS)",
			TableLabel:   "Frame {marker.data.frameNumber}",
			Description:  "Tracy frame marker",
			Fields: []format.MarkerSchemaField{
				field("name", "Name", "unique-string"),
				field("frameNumber", "Frame", "integer"),
				field("duration", "Duration (ms)", "duration"),
				field("fps", "FPS", "number"),
			},
		},
	}
}
