package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxprof/fxexport/internal/libtable"
	"github.com/fxprof/fxexport/internal/strtab"
	"github.com/fxprof/fxexport/internal/trace"
	"github.com/fxprof/fxexport/internal/trace/tracetest"
)

func TestCollectZonesSingleZone(t *testing.T) {
	st := strtab.New()
	tt := New()

	zones := []trace.Zone{
		{Name: "work", StartNs: 1_000_000, EndNs: 3_000_000, EndValid: true},
	}
	tt.CollectZones(zones, st, 1)

	markers := tt.MarkersJSON()
	require.Equal(t, 1, markers.Length)
	assert.Equal(t, 1.0, markers.StartTime[0])
	assert.Equal(t, 3.0, markers.EndTime[0])
	assert.Equal(t, int(PhaseInterval), markers.Phase[0])

	strs := st.Strings()
	assert.Contains(t, strs, "work")
	assert.Contains(t, strs, "TracyZone")
}

func TestCollectZonesSkipsInvalidEnd(t *testing.T) {
	st := strtab.New()
	tt := New()

	zones := []trace.Zone{{Name: "open", StartNs: 0, EndValid: false}}
	tt.CollectZones(zones, st, 1)

	assert.Equal(t, 0, tt.MarkersJSON().Length)
}

func TestCollectZonesNested(t *testing.T) {
	st := strtab.New()
	tt := New()

	zones := []trace.Zone{
		{
			Name: "parent", StartNs: 0, EndNs: 10_000_000, EndValid: true,
			Children: []trace.Zone{
				{Name: "child", StartNs: 2_000_000, EndNs: 8_000_000, EndValid: true},
			},
		},
	}
	tt.CollectZones(zones, st, 1)

	require.Equal(t, 2, tt.MarkersJSON().Length)
	assert.Equal(t, 0.0, tt.RegisterTimeMs())
	assert.Equal(t, 10.0, tt.UnregisterTimeMs())
}

func TestCollectSamplesTwoFrameCallstack(t *testing.T) {
	st := strtab.New()
	lt := libtable.New()
	tt := New()

	r := tracetest.New()
	r.AddFrame(1, 0x1000, trace.SubFrame{Name: "outer", SymAddr: 0x1000})
	r.AddFrame(2, 0x2000, trace.SubFrame{Name: "inner", SymAddr: 0x2000})
	// Reader.Callstack is innermost-first at index 0, outermost last: [inner, outer].
	r.AddCallstack(7, 2, 1)

	samples := []trace.Sample{{TimeNs: 5_000_000, CallstackID: 7}}
	tt.CollectSamples(r, samples, st, lt, 1, 2)

	frames := tt.FrameTableJSON()
	stacksJSON := tt.StackTableJSON()
	samplesJSON := tt.SamplesJSON()

	require.Equal(t, 2, frames.Length)
	require.Equal(t, 2, stacksJSON.Length)
	assert.Nil(t, stacksJSON.Prefix[0])
	assert.Equal(t, int32(0), stacksJSON.Prefix[1])
	require.Equal(t, 1, samplesJSON.Length)
	assert.Equal(t, int32(1), samplesJSON.Stack[0])
	assert.Equal(t, 5.0, samplesJSON.TimeDeltas[0])
}

func TestCollectSamplesSharedPrefix(t *testing.T) {
	st := strtab.New()
	lt := libtable.New()
	tt := New()

	r := tracetest.New()
	r.AddFrame(1, 0x1000, trace.SubFrame{Name: "A", SymAddr: 0x1000})
	r.AddFrame(2, 0x2000, trace.SubFrame{Name: "B", SymAddr: 0x2000})
	r.AddFrame(3, 0x3000, trace.SubFrame{Name: "C", SymAddr: 0x3000})
	r.AddCallstack(1, 2, 1) // [A,B]: inner=B(2) at index 0, outer=A(1) last
	r.AddCallstack(2, 3, 1) // [A,C]: inner=C(3) at index 0, outer=A(1) last

	samples := []trace.Sample{
		{TimeNs: 1_000_000, CallstackID: 1},
		{TimeNs: 2_000_000, CallstackID: 2},
	}
	tt.CollectSamples(r, samples, st, lt, 1, 2)

	assert.Equal(t, 3, tt.FrameTableJSON().Length)
	assert.Equal(t, 3, tt.StackTableJSON().Length)
}

func TestCollectAllocationsPaired(t *testing.T) {
	st := strtab.New()
	lt := libtable.New()
	tt := New()

	r := tracetest.New()
	namespaces := map[string][]trace.MemEvent{
		"default": {
			{AllocTimeNs: 1_000_000, FreeTimeNs: 5_000_000, Size: 64, Ptr: 0xABCD, ThreadAlloc: 5, ThreadFree: 5},
		},
	}
	tt.CollectAllocations(r, namespaces, st, lt, 7)

	allocs := tt.NativeAllocationsJSON()
	require.NotNil(t, allocs)
	require.Equal(t, 2, allocs.Length)
	assert.Equal(t, 1.0, allocs.Time[0])
	assert.Equal(t, int64(64), allocs.Weight[0])
	assert.Equal(t, 5.0, allocs.Time[1])
	assert.Equal(t, int64(-64), allocs.Weight[1])
	assert.Equal(t, uint64(0xABCD), allocs.MemoryAddress[0])
}

func TestEmptyThreadTablesAllColumnsLengthZero(t *testing.T) {
	tt := New()
	assert.Equal(t, 0, tt.FrameTableJSON().Length)
	assert.Equal(t, 0, tt.FuncTableJSON().Length)
	assert.Equal(t, 0, tt.NativeSymbolsJSON().Length)
	assert.Equal(t, 0, tt.ResourceTableJSON().Length)
	assert.Equal(t, 0, tt.StackTableJSON().Length)
	assert.Equal(t, 0, tt.SamplesJSON().Length)
	assert.Equal(t, 0, tt.MarkersJSON().Length)
	assert.Nil(t, tt.NativeAllocationsJSON())
	assert.Equal(t, 0.0, tt.RegisterTimeMs())
}
