// Package tracetest provides an in-memory trace.Reader fixture for tests,
// built by hand rather than decoded from a capture file.
package tracetest

import "github.com/fxprof/fxexport/internal/trace"

// Reader is a mutable, in-memory trace.Reader. Build one with New, then
// populate fields directly or via the Add* helpers before handing it to a
// collector or the assembler. The zero value has nil maps, which the Add*
// helpers cannot fill, and reports itself as not ready.
type Reader struct {
	Name_             string
	Program           string
	Host              string
	App               []string
	CaptureTime       int64
	SamplingPeriod    int64
	Pid               uint64
	ThreadList        []*Thread
	Pids              map[uint64]uint64
	Callstacks        map[uint32][]trace.FrameID
	Frames            map[trace.FrameID]*trace.CallstackFrame
	Pointers          map[trace.FrameID]uint64
	SymbolSizes       map[uint64]uint32
	LockMap           map[uint64]*trace.Lock
	MessageList       []trace.Message
	PlotList          []trace.Plot
	Frames_           *trace.FrameSeries
	GPUContextList    []trace.GPUContext
	MemNamespaces     map[string][]trace.MemEvent
	SrcLocZonesReady  bool
	CallstackSmplRdy  bool
}

// New returns an empty fixture, ready-for-export by default.
func New() *Reader {
	return &Reader{
		Pids:             make(map[uint64]uint64),
		Callstacks:       make(map[uint32][]trace.FrameID),
		Frames:           make(map[trace.FrameID]*trace.CallstackFrame),
		Pointers:         make(map[trace.FrameID]uint64),
		SymbolSizes:      make(map[uint64]uint32),
		LockMap:          make(map[uint64]*trace.Lock),
		MemNamespaces:    make(map[string][]trace.MemEvent),
		SrcLocZonesReady: true,
		CallstackSmplRdy: true,
	}
}

func (r *Reader) CaptureName() string      { return r.Name_ }
func (r *Reader) CaptureProgram() string    { return r.Program }
func (r *Reader) HostInfo() string          { return r.Host }
func (r *Reader) AppInfo() []string         { return r.App }
func (r *Reader) CaptureTimeNs() int64      { return r.CaptureTime }
func (r *Reader) SamplingPeriodNs() int64   { return r.SamplingPeriod }
func (r *Reader) PID() uint64               { return r.Pid }

func (r *Reader) Threads() []trace.ThreadReader {
	out := make([]trace.ThreadReader, len(r.ThreadList))
	for i, th := range r.ThreadList {
		out[i] = th
	}
	return out
}

func (r *Reader) PIDForTID(tid uint64) (uint64, bool) {
	pid, ok := r.Pids[tid]
	return pid, ok
}

func (r *Reader) Callstack(id uint32) []trace.FrameID {
	if id == 0 {
		return nil
	}
	return r.Callstacks[id]
}

func (r *Reader) CallstackFrame(id trace.FrameID) *trace.CallstackFrame {
	return r.Frames[id]
}

func (r *Reader) CanonicalPointer(id trace.FrameID) uint64 {
	return r.Pointers[id]
}

func (r *Reader) SymbolSize(addr uint64) (uint32, bool) {
	size, ok := r.SymbolSizes[addr]
	return size, ok
}

func (r *Reader) Locks() map[uint64]*trace.Lock { return r.LockMap }
func (r *Reader) Messages() []trace.Message     { return r.MessageList }
func (r *Reader) Plots() []trace.Plot           { return r.PlotList }
func (r *Reader) FrameSeries() *trace.FrameSeries { return r.Frames_ }
func (r *Reader) GPUContexts() []trace.GPUContext { return r.GPUContextList }
func (r *Reader) MemoryNamespaces() map[string][]trace.MemEvent {
	return r.MemNamespaces
}

func (r *Reader) SourceLocationZonesReady() bool { return r.SrcLocZonesReady }
func (r *Reader) CallstackSamplesReady() bool    { return r.CallstackSmplRdy }

// Thread is a fixture thread.
type Thread struct {
	Tid        uint64
	ThreadName string
	ZoneList   []trace.Zone
	SampleList []trace.Sample
}

func (t *Thread) ID() uint64             { return t.Tid }
func (t *Thread) Name() string           { return t.ThreadName }
func (t *Thread) Zones() []trace.Zone    { return t.ZoneList }
func (t *Thread) Samples() []trace.Sample { return t.SampleList }

// AddCallstack registers a callstack id mapping to the given frame ids,
// innermost first, for convenience in tests that build samples by hand.
func (r *Reader) AddCallstack(id uint32, frames ...trace.FrameID) {
	r.Callstacks[id] = frames
}

// AddFrame registers one callstack frame's symbol data.
func (r *Reader) AddFrame(id trace.FrameID, ptr uint64, data ...trace.SubFrame) {
	r.Frames[id] = &trace.CallstackFrame{Data: data}
	r.Pointers[id] = ptr
}
