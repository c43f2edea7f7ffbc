// Package assembler orchestrates the conversion of one trace.Reader into a
// format.Profile document: readiness polling, per-thread and per-GPU
// pseudo-thread table construction, category/marker-schema catalogs,
// counters, host/app metadata, and main-thread selection.
package assembler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fxprof/fxexport/internal/format"
	"github.com/fxprof/fxexport/internal/libtable"
	"github.com/fxprof/fxexport/internal/strtab"
	"github.com/fxprof/fxexport/internal/tables"
	"github.com/fxprof/fxexport/internal/trace"
)

const readinessPollInterval = 10 * time.Millisecond

// WaitReady blocks until the reader's derived indices are ready, polling at
// a short fixed interval, or returns ctx's error if it is cancelled first.
func WaitReady(ctx context.Context, r trace.Reader) error {
	for !r.SourceLocationZonesReady() || !r.CallstackSamplesReady() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readinessPollInterval):
		}
	}
	return nil
}

// Assemble converts a ready trace.Reader into the final processed-profile
// document.
func Assemble(r trace.Reader) format.Profile {
	st := strtab.New()
	lt := libtable.New()

	threads := r.Threads()
	outThreads := make([]format.Thread, 0, len(threads))

	mainThreadIndex := 0
	foundMain := false
	foundMainWithCapturePid := false

	for i, th := range threads {
		tt := tables.New()

		tt.CollectZones(th.Zones(), st, CategoryUser)
		tt.CollectMessages(r.Messages(), th.ID(), st, CategoryMessage)
		tt.CollectLocks(r.Locks(), th.ID(), st, CategoryLock)
		tt.CollectSamples(r, th.Samples(), st, lt, CategoryUser, CategoryKernel)
		tt.CollectAllocations(r, r.MemoryNamespaces(), st, lt, CategoryMemory)
		if i == 0 {
			tt.CollectFrameMarkers(r.FrameSeries(), st, CategoryFrame)
		}

		name := th.Name()
		if name == "" {
			name = fmt.Sprintf("Thread %d", th.ID())
		}

		pid := r.PID()
		if p, ok := r.PIDForTID(th.ID()); ok {
			pid = p
		}

		isMain := name == "Main thread" || pid == th.ID()

		if isMain && !foundMainWithCapturePid {
			if pid == r.PID() {
				mainThreadIndex = i
				foundMainWithCapturePid = true
			} else if !foundMain {
				mainThreadIndex = i
				foundMain = true
			}
		}

		outThreads = append(outThreads, format.Thread{
			Name:                 name,
			IsMainThread:         isMain,
			ProcessType:          "default",
			ProcessName:          processName(r.CaptureProgram()),
			ProcessStartupTime:   0,
			ProcessShutdownTime:  nil,
			RegisterTime:         tt.RegisterTimeMs(),
			UnregisterTime:       tt.UnregisterTimeMs(),
			PID:                  strconv.FormatUint(pid, 10),
			TID:                  th.ID(),
			FrameTable:           tt.FrameTableJSON(),
			FuncTable:            tt.FuncTableJSON(),
			Markers:              tt.MarkersJSON(),
			NativeSymbols:        tt.NativeSymbolsJSON(),
			ResourceTable:        tt.ResourceTableJSON(),
			Samples:              tt.SamplesJSON(),
			StackTable:           tt.StackTableJSON(),
			NativeAllocations:    tt.NativeAllocationsJSON(),
		})
	}

	for _, ctx := range r.GPUContexts() {
		for rawTid, zones := range ctx.Threads {
			tt := tables.New()
			tt.CollectGPUZones(zones, st, CategoryGPU)
			if tt.MarkersJSON().Length == 0 {
				continue
			}

			outThreads = append(outThreads, format.Thread{
				Name:                ctx.Name,
				IsMainThread:        false,
				ProcessType:         "gpu",
				ProcessName:         processName(r.CaptureProgram()),
				ProcessStartupTime:  0,
				ProcessShutdownTime: nil,
				RegisterTime:        tt.RegisterTimeMs(),
				UnregisterTime:      tt.UnregisterTimeMs(),
				PID:                 strconv.FormatUint(r.PID(), 10),
				TID:                 fmt.Sprintf("gpu-%d", rawTid),
				FrameTable:          tt.FrameTableJSON(),
				FuncTable:           tt.FuncTableJSON(),
				Markers:             tt.MarkersJSON(),
				NativeSymbols:       tt.NativeSymbolsJSON(),
				ResourceTable:       tt.ResourceTableJSON(),
				Samples:             tt.SamplesJSON(),
				StackTable:          tt.StackTableJSON(),
			})
		}
	}

	counters := buildCounters(r.Plots(), r.PID(), mainThreadIndex)

	libs := make([]format.Library, 0, len(lt.Libraries()))
	for _, lib := range lt.Libraries() {
		libs = append(libs, format.Library{
			Name:      lib.Name,
			Path:      lib.Name,
			DebugName: lib.Name,
			DebugPath: lib.Name,
			Start:     lib.Start,
			End:       lib.End,
		})
	}

	meta := buildMeta(r)
	meta.InitialSelectedThreads = []int{mainThreadIndex}

	return format.Profile{
		Meta:     meta,
		Libs:     libs,
		Threads:  outThreads,
		Counters: counters,
		Shared:   format.Shared{StringArray: st.Strings()},
	}
}

func processName(program string) string {
	if program == "" {
		return "Tracy"
	}
	return program
}

func buildMeta(r trace.Reader) format.Meta {
	info := parseHostInfo(r.HostInfo())

	meta := format.Meta{
		Categories:                           categories(),
		Debug:                                false,
		Interval:                             nsToMs(r.SamplingPeriodNs()),
		MarkerSchema:                         markerSchemas(),
		PausedRanges:                         []any{},
		Platform:                             r.HostInfo(),
		PreprocessedProfileVersion:           57,
		ProcessType:                          0,
		Product:                              processName(r.CaptureProgram()),
		StartTime:                            float64(r.CaptureTimeNs()) / 1000,
		StartTimeAsClockMonotonicNsSinceBoot: 0,
		Symbolicated:                         true,
		Version:                              28,
		SampleUnits: format.SampleUnits{
			Time:           "ms",
			EventDelay:     "ms",
			ThreadCPUDelta: "µs",
		},
		UsesOnlyOneStackType: true,
		ABI:                  info.Arch + "-" + info.Compiler,
		OSCPU:                info.OS,
		CPUName:              info.CPU,
	}

	if cores, ok := physicalCPUs(info.CPUCores); ok {
		meta.PhysicalCPUs = cores
	}
	if bytes, ok := ramBytes(info.RAM); ok {
		meta.MainMemory = strconv.FormatUint(bytes, 10)
	}

	meta.Extra = []format.ExtraInfoSection{
		{
			Label: "Tracy info",
			Entries: []format.ExtraInfoEntry{
				{Label: "User", Value: info.User},
				{Label: "Compiler", Value: info.Compiler},
				{Label: "Application info", Value: joinAppInfo(r.AppInfo())},
			},
		},
	}

	if r.CaptureName() != "" {
		meta.ImportedFrom = r.CaptureName()
	}

	return meta
}
