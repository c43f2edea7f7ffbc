// Package trace defines the query interface this program consumes from a
// previously captured profiling trace (spec.md §6). The reader/decoder that
// materializes this interface from an on-disk trace file is an external
// collaborator — not implemented by this package, only depended upon.
package trace

// Open decodes an on-disk capture into a Reader. The decoder itself is an
// external collaborator this package only declares the seam for (spec.md
// §1 places the trace reader/decoder out of scope); a concrete decoder
// registers itself here, typically from an anonymous import in main. Open
// is nil until a decoder registers; cmd/fxexport checks for that and
// reports that no decoder is available.
var Open func(path string) (Reader, error)

// Reader exposes everything the assembler and collectors need from a loaded
// trace. A concrete implementation (the trace decoder) is out of scope;
// internal/trace/tracetest provides an in-memory fixture for tests.
type Reader interface {
	// CaptureName is the user-supplied capture label, "" if none.
	CaptureName() string
	// CaptureProgram is the profiled program's name, "" if unknown.
	CaptureProgram() string
	// HostInfo is the raw "Key: value" host-information document.
	HostInfo() string
	// AppInfo is the list of application info strings recorded during capture.
	AppInfo() []string
	// CaptureTimeNs is the capture's wall-clock start time, nanoseconds
	// since the Unix epoch.
	CaptureTimeNs() int64
	// SamplingPeriodNs is the configured sampling interval in nanoseconds.
	SamplingPeriodNs() int64
	// PID is the capture's primary process id.
	PID() uint64

	// Threads lists every thread recorded in the trace, in capture order.
	Threads() []ThreadReader
	// PIDForTID resolves the owning process id of a thread, if recorded
	// separately from the capture's primary pid.
	PIDForTID(tid uint64) (pid uint64, ok bool)

	// Callstack resolves a nonzero callstack id to its ordered frame ids,
	// index 0 innermost, last index outermost.
	Callstack(id uint32) []FrameID
	// CallstackFrame resolves one frame id to its (possibly inlined) data.
	CallstackFrame(id FrameID) *CallstackFrame
	// CanonicalPointer is the canonical instruction address for a frame id,
	// used to classify user vs. kernel frames by its sign bit.
	CanonicalPointer(id FrameID) uint64
	// SymbolSize looks up the function-size hint for a symbol address.
	SymbolSize(addr uint64) (size uint32, ok bool)

	// Locks maps lock id to its recorded timeline.
	Locks() map[uint64]*Lock
	// Messages lists every log message recorded in the trace.
	Messages() []Message
	// Plots lists every counter/plot series recorded in the trace.
	Plots() []Plot
	// FrameSeries returns the first (primary) frame-marker series, or nil.
	FrameSeries() *FrameSeries
	// GPUContexts lists every GPU context recorded in the trace.
	GPUContexts() []GPUContext
	// MemoryNamespaces maps allocator namespace name to its event stream.
	MemoryNamespaces() map[string][]MemEvent

	// SourceLocationZonesReady reports whether the reader has finished
	// indexing zones by source location.
	SourceLocationZonesReady() bool
	// CallstackSamplesReady reports whether the reader has finished
	// indexing callstack samples.
	CallstackSamplesReady() bool
}

// ThreadReader exposes one thread's recorded timeline.
type ThreadReader interface {
	ID() uint64
	// Name is the thread's recorded name, "" if never set.
	Name() string
	// Zones is the thread's top-level CPU zone list (children nest inside
	// each Zone).
	Zones() []Zone
	// Samples is the thread's callstack-sample stream, in capture order.
	Samples() []Sample
}

// Zone is one CPU instrumentation zone, possibly containing nested children.
type Zone struct {
	Name     string
	Text     string // "" if no user text was attached
	HasColor bool
	Color    uint32 // packed 0xRRGGBB, meaningful only if HasColor
	File     string // "" if source location carries no file
	Function string
	Line     uint32
	StartNs  int64
	EndNs    int64
	EndValid bool // false for a still-open or dropped zone
	Children []Zone
}

// GPUZone is one GPU instrumentation zone, possibly containing nested
// children.
type GPUZone struct {
	Name       string
	File       string
	Function   string
	Line       uint32
	GPUStartNs int64
	GPUEndNs   int64
	CPUStartNs int64
	CPUEndNs   int64
	EndValid   bool // false when GPUEndNs < 0
	Children   []GPUZone
}

// GPUContext groups the GPU zone timelines recorded for one GPU context
// (e.g. one Vulkan/D3D queue), keyed by thread id.
type GPUContext struct {
	Name    string
	Threads map[uint64][]GPUZone
}

// Sample is one callstack sample.
type Sample struct {
	TimeNs      int64
	CallstackID uint32 // 0 means "no callstack"
}

// FrameID identifies one callstack entry's symbol data.
type FrameID uint64

// SubFrame is one entry in a (possibly inlined) symbol chain, data[0] is
// the innermost (leaf) inlined frame.
type SubFrame struct {
	Name    string
	File    string
	Line    uint32
	SymAddr uint64
}

// CallstackFrame is the full symbol data for one callstack entry.
type CallstackFrame struct {
	Data      []SubFrame // data[0] innermost ... data[len-1] outermost within this entry
	ImageName string     // "" if unmapped
}

// LockEventType enumerates the lock timeline event kinds.
type LockEventType int

const (
	LockWait LockEventType = iota
	LockWaitShared
	LockObtain
	LockObtainShared
	LockRelease
	LockReleaseShared
)

// LockEvent is one timeline entry for a lock, scoped to a single thread via
// ThreadBit (see Lock.ThreadBits).
type LockEvent struct {
	TimeNs    int64
	Type      LockEventType
	ThreadBit uint8
}

// Lock is one recorded lock's contention timeline.
type Lock struct {
	ID             uint64
	CustomName     string // "" if the lock has no user-assigned name
	SrcLocFunction string // fallback name, the declaring function
	// ThreadBits maps thread id to the per-lock bit identifying that
	// thread's events in Timeline.
	ThreadBits map[uint64]uint8
	Timeline   []LockEvent
}

// Message is one log message.
type Message struct {
	TimeNs   int64
	Text     string
	Color    uint32 // 0 means "no color"
	ThreadID uint64
}

// PlotType classifies a counter/plot series.
type PlotType int

const (
	PlotUser PlotType = iota
	PlotMemory
	PlotPower
	PlotSysTime
	PlotOther
)

// PlotPoint is one sample of a plot series.
type PlotPoint struct {
	TimeNs int64
	Value  float64
}

// Plot is one counter/plot series.
type Plot struct {
	Name string
	Type PlotType
	Data []PlotPoint
}

// FrameMark is one recorded application frame boundary.
type FrameMark struct {
	StartNs int64
	EndNs   int64 // negative if the frame never closed
}

// FrameSeries is one named sequence of application frame boundaries.
type FrameSeries struct {
	Name   string
	Frames []FrameMark
}

// MemEvent is one paired (or still-live) allocation.
type MemEvent struct {
	AllocTimeNs    int64
	FreeTimeNs     int64 // -1 if never freed
	Size           int64
	Ptr            uint64
	CallstackAlloc uint32 // 0 if none recorded
	CallstackFree  uint32 // 0 if none recorded
	ThreadAlloc    uint64
	ThreadFree     uint64
}
