package assembler

import (
	"strconv"

	"github.com/fxprof/fxexport/internal/format"
	"github.com/fxprof/fxexport/internal/trace"
)

func nsToMs(ns int64) float64 {
	return float64(ns) / 1e6
}

func plotCategoryAndDescription(t trace.PlotType) (category, description string) {
	switch t {
	case trace.PlotUser:
		return "User", "User-defined plot"
	case trace.PlotMemory:
		return "Memory", "Memory usage"
	case trace.PlotPower:
		return "Power", "Power consumption"
	default:
		return "Other", "Plot data"
	}
}

// buildCounters emits one counter per non-SysTime plot with non-empty
// data, delta-encoding its value stream.
func buildCounters(plots []trace.Plot, pid uint64, mainThreadIndex int) []format.Counter {
	var out []format.Counter

	for _, plot := range plots {
		if len(plot.Data) == 0 || plot.Type == trace.PlotSysTime {
			continue
		}

		time := make([]float64, len(plot.Data))
		count := make([]float64, len(plot.Data))
		time[0] = nsToMs(plot.Data[0].TimeNs)
		count[0] = plot.Data[0].Value
		for i := 1; i < len(plot.Data); i++ {
			time[i] = nsToMs(plot.Data[i].TimeNs)
			count[i] = plot.Data[i].Value - plot.Data[i-1].Value
		}

		category, description := plotCategoryAndDescription(plot.Type)

		out = append(out, format.Counter{
			Name:            plot.Name,
			Category:        category,
			Description:     description,
			PID:             strconv.FormatUint(pid, 10),
			MainThreadIndex: mainThreadIndex,
			Samples: format.CounterSamples{
				Time:   time,
				Count:  count,
				Length: len(plot.Data),
			},
		})
	}

	if out == nil {
		out = []format.Counter{}
	}
	return out
}
