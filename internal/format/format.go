// Package format defines the processed-profile JSON schema emitted by this
// tool: the columnar per-thread tables, the document meta block, and the
// top-level document envelope.
package format

// Profile is the top-level emitted document.
type Profile struct {
	Meta     Meta      `json:"meta"`
	Libs     []Library `json:"libs"`
	Threads  []Thread  `json:"threads"`
	Counters []Counter `json:"counters"`
	Shared   Shared    `json:"shared"`
}

// Shared holds tables referenced from every thread/library row.
type Shared struct {
	StringArray []string `json:"stringArray"`
}

// Category is one entry of the document-wide category catalog.
type Category struct {
	Name          string   `json:"name"`
	Color         string   `json:"color"`
	Subcategories []string `json:"subcategories"`
}

// MarkerSchemaField describes one field a marker schema's data blob may
// carry.
type MarkerSchemaField struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Format string `json:"format"`
	Hide   bool   `json:"hide,omitempty"`
}

// MarkerSchema describes one marker type's display surfaces and fields.
type MarkerSchema struct {
	Name          string              `json:"name"`
	Display       []string            `json:"display"`
	ChartLabel    string              `json:"chartLabel"`
	TooltipLabel  string              `json:"tooltipLabel"`
	TableLabel    string              `json:"tableLabel"`
	Description   string              `json:"description"`
	ColorField    string              `json:"colorField,omitempty"`
	Fields        []MarkerSchemaField `json:"fields"`
}

// ExtraInfoEntry is one row of a meta.extra info panel.
type ExtraInfoEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ExtraInfoSection is one labeled group of extra info rows.
type ExtraInfoSection struct {
	Label   string           `json:"label"`
	Entries []ExtraInfoEntry `json:"entries"`
}

// SampleUnits declares the physical units of sample/marker numeric fields.
type SampleUnits struct {
	Time           string `json:"time"`
	EventDelay     string `json:"eventDelay"`
	ThreadCPUDelta string `json:"threadCPUDelta"`
}

// Meta is the document's meta block.
type Meta struct {
	Categories                           []Category         `json:"categories"`
	Debug                                bool                `json:"debug"`
	Interval                             float64             `json:"interval"`
	MarkerSchema                         []MarkerSchema      `json:"markerSchema"`
	PausedRanges                         []any               `json:"pausedRanges"`
	Platform                             string              `json:"platform"`
	PreprocessedProfileVersion           int                 `json:"preprocessedProfileVersion"`
	ProcessType                          int                 `json:"processType"`
	Product                              string              `json:"product"`
	StartTime                            float64             `json:"startTime"`
	StartTimeAsClockMonotonicNsSinceBoot int64               `json:"startTimeAsClockMonotonicNanosecondsSinceBoot"`
	Symbolicated                         bool                `json:"symbolicated"`
	Version                              int                 `json:"version"`
	SampleUnits                          SampleUnits         `json:"sampleUnits"`
	UsesOnlyOneStackType                 bool                `json:"usesOnlyOneStackType"`
	ABI                                  string              `json:"abi"`
	OSCPU                                string              `json:"oscpu"`
	MainMemory                           string              `json:"mainMemory,omitempty"`
	CPUName                              string              `json:"CPUName,omitempty"`
	PhysicalCPUs                         int                 `json:"physicalCPUs,omitempty"`
	Extra                                []ExtraInfoSection  `json:"extra,omitempty"`
	ImportedFrom                         string              `json:"importedFrom,omitempty"`
	InitialSelectedThreads               []int               `json:"initialSelectedThreads"`
}

// Library is one entry of the document-wide shared-object table.
type Library struct {
	Arch       any    `json:"arch"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	DebugName  string `json:"debugName"`
	DebugPath  string `json:"debugPath"`
	Start      uint64 `json:"start"`
	End        uint64 `json:"end"`
	BreakpadID any    `json:"breakpadId"`
	CodeID     any    `json:"codeId"`
}

// FrameTable is the per-thread frame table's columns.
type FrameTable struct {
	Length        int     `json:"length"`
	Address       []int64 `json:"address"`
	Category      []int   `json:"category"`
	Subcategory   []any   `json:"subcategory"`
	Func          []int   `json:"func"`
	NativeSymbol  []int   `json:"nativeSymbol"`
	InnerWindowID []any   `json:"innerWindowID"`
	Line          []any   `json:"line"`
	Column        []any   `json:"column"`
	InlineDepth   []int   `json:"inlineDepth"`
}

// FuncTable is the per-thread function table's columns.
type FuncTable struct {
	Length        int    `json:"length"`
	Name          []int  `json:"name"`
	IsJS          []bool `json:"isJS"`
	RelevantForJS []bool `json:"relevantForJS"`
	Resource      []int  `json:"resource"`
	FileName      []int  `json:"fileName"`
	LineNumber    []any  `json:"lineNumber"`
	ColumnNumber  []any  `json:"columnNumber"`
}

// NativeSymbolTable is the per-thread native-symbol table's columns.
type NativeSymbolTable struct {
	Length       int     `json:"length"`
	LibIndex     []int   `json:"libIndex"`
	Address      []int64 `json:"address"`
	Name         []int   `json:"name"`
	FunctionSize []any   `json:"functionSize"`
}

// ResourceTable is the per-thread resource table's columns.
type ResourceTable struct {
	Length int   `json:"length"`
	Lib    []int `json:"lib"`
	Name   []int `json:"name"`
	Host   []any `json:"host"`
	Type   []int `json:"type"`
}

// StackTable is the per-thread stack table's columns.
type StackTable struct {
	Length int   `json:"length"`
	Prefix []any `json:"prefix"`
	Frame  []int `json:"frame"`
}

// SamplesTable is the per-thread samples table's columns.
type SamplesTable struct {
	Length         int       `json:"length"`
	Stack          []any     `json:"stack"`
	TimeDeltas     []float64 `json:"timeDeltas"`
	Weight         []float64 `json:"weight"`
	WeightType     string    `json:"weightType"`
	ThreadCPUDelta []any     `json:"threadCPUDelta"`
}

// NativeAllocationsTable is the per-thread allocation table's columns.
type NativeAllocationsTable struct {
	Time          []float64 `json:"time"`
	Weight        []int64   `json:"weight"`
	WeightType    string    `json:"weightType"`
	Stack         []any     `json:"stack"`
	MemoryAddress []uint64  `json:"memoryAddress"`
	ThreadID      []uint64  `json:"threadId"`
	Length        int       `json:"length"`
}

// MarkersTable is the per-thread markers table's columns.
type MarkersTable struct {
	Length    int       `json:"length"`
	Category  []int     `json:"category"`
	Data      []any     `json:"data"`
	Name      []int     `json:"name"`
	StartTime []float64 `json:"startTime"`
	EndTime   []float64 `json:"endTime"`
	Phase     []int     `json:"phase"`
}

// Thread is one emitted thread (or GPU pseudo-thread) object.
type Thread struct {
	Name                string                  `json:"name"`
	IsMainThread        bool                    `json:"isMainThread"`
	ProcessType         string                  `json:"processType"`
	ProcessName         string                  `json:"processName"`
	ProcessStartupTime  float64                 `json:"processStartupTime"`
	ProcessShutdownTime any                     `json:"processShutdownTime"`
	RegisterTime        float64                 `json:"registerTime"`
	UnregisterTime      float64                 `json:"unregisterTime"`
	PID                 string                  `json:"pid"`
	TID                 any                     `json:"tid"`
	FrameTable          FrameTable              `json:"frameTable"`
	FuncTable           FuncTable               `json:"funcTable"`
	Markers             MarkersTable            `json:"markers"`
	NativeSymbols       NativeSymbolTable       `json:"nativeSymbols"`
	ResourceTable       ResourceTable           `json:"resourceTable"`
	Samples             SamplesTable            `json:"samples"`
	StackTable          StackTable              `json:"stackTable"`
	NativeAllocations   *NativeAllocationsTable `json:"nativeAllocations,omitempty"`
}

// CounterSamples is a counter's delta-encoded sample stream.
type CounterSamples struct {
	Time   []float64 `json:"time"`
	Count  []float64 `json:"count"`
	Length int       `json:"length"`
}

// Counter is one emitted plot/counter series.
type Counter struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	PID             string         `json:"pid"`
	MainThreadIndex int            `json:"mainThreadIndex"`
	Samples         CounterSamples `json:"samples"`
}
