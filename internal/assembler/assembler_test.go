package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxprof/fxexport/internal/trace"
	"github.com/fxprof/fxexport/internal/trace/tracetest"
)

func TestAssembleEmptyTrace(t *testing.T) {
	r := tracetest.New()

	profile := Assemble(r)

	assert.Equal(t, 28, profile.Meta.Version)
	assert.Equal(t, 57, profile.Meta.PreprocessedProfileVersion)
	assert.Empty(t, profile.Threads)
	assert.Empty(t, profile.Counters)
	assert.Empty(t, profile.Libs)
	assert.Empty(t, profile.Shared.StringArray)
}

func TestAssembleSingleZone(t *testing.T) {
	r := tracetest.New()
	r.Pid = 7
	th := &tracetest.Thread{
		Tid:        7,
		ThreadName: "Main thread",
		ZoneList: []trace.Zone{
			{Name: "work", StartNs: 1_000_000, EndNs: 3_000_000, EndValid: true},
		},
	}
	r.ThreadList = append(r.ThreadList, th)

	profile := Assemble(r)

	require.Len(t, profile.Threads, 1)
	thread := profile.Threads[0]
	assert.True(t, thread.IsMainThread)
	assert.Equal(t, 1, thread.Markers.Length)
	assert.Equal(t, []float64{1.0}, thread.Markers.StartTime)
	assert.Equal(t, []float64{3.0}, thread.Markers.EndTime)
	assert.Equal(t, []int{1}, thread.Markers.Phase)
	assert.Contains(t, profile.Shared.StringArray, "work")
	assert.Contains(t, profile.Shared.StringArray, "TracyZone")
}

func TestAssembleMainThreadSelection(t *testing.T) {
	r := tracetest.New()
	r.Pid = 100
	r.ThreadList = append(r.ThreadList,
		&tracetest.Thread{Tid: 5, ThreadName: "worker"},
		&tracetest.Thread{Tid: 100, ThreadName: "Main thread"},
	)

	profile := Assemble(r)

	require.Equal(t, []int{1}, profile.Meta.InitialSelectedThreads)
	assert.True(t, profile.Threads[1].IsMainThread)
}
