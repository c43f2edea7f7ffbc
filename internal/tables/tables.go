// Package tables implements ThreadTables, the per-thread columnar
// accumulator at the center of the profile conversion: frames, functions,
// native symbols, resources, stacks, samples, markers and allocations, each
// deduplicated online during a single traversal of the source trace.
package tables

import (
	"math"

	"github.com/fxprof/fxexport/internal/libtable"
	"github.com/fxprof/fxexport/internal/strtab"
)

type frameEntry struct {
	funcIdx        uint32
	nativeSymbolIdx uint32
	category       int
	address        int64
	line           uint32
	column         uint32
	inlineDepth    uint32
}

type funcEntry struct {
	nameIdx      uint32
	resourceIdx  int32
	fileNameIdx  uint32
	lineNumber   uint32
	columnNumber uint32
}

type nativeSymbolEntry struct {
	libIndex     int32
	address      uint64
	nameIdx      uint32
	functionSize uint32
}

type resourceEntry struct {
	libIdx  int32
	nameIdx uint32
}

type stackEntry struct {
	prefix int32
	frame  uint32
}

type sampleEntry struct {
	timeMs   float64
	stackIdx int32
	weight   float64
}

// MarkerPhase enumerates the marker timeline phase values.
type MarkerPhase int

const (
	PhaseInstant MarkerPhase = iota
	PhaseInterval
	PhaseIntervalStart
	PhaseIntervalEnd
)

type markerEntry struct {
	category  int
	nameIdx   uint32
	startMs   float64
	endMs     float64
	phase     MarkerPhase
	data      map[string]any
}

// allocationEntry is one emitted allocation row.
type allocationEntry struct {
	timeMs        float64
	weight        int64
	stackIdx      int32
	memoryAddress uint64
	threadID      uint64
}

// ThreadTables is the per-thread (or per-GPU-pseudo-thread) accumulator.
// A fresh instance is built for every thread; it owns its dedup maps and is
// discarded once its JSON has been emitted.
type ThreadTables struct {
	frames        []frameEntry
	funcs         []funcEntry
	nativeSymbols []nativeSymbolEntry
	resources     []resourceEntry
	stacks        []stackEntry
	samples       []sampleEntry
	markers       []markerEntry
	allocations   []allocationEntry

	symAddrToNativeSymbol map[uint64]uint32
	symAddrToFunc         map[uint64]uint32
	libNameToResource     map[string]uint32
	frameKeyToFrame       map[uint64]uint32
	stackKeyToStack       map[uint64]int32

	minTime int64
	maxTime int64
	sawTime bool
}

// New returns an empty ThreadTables.
func New() *ThreadTables {
	return &ThreadTables{
		symAddrToNativeSymbol: make(map[uint64]uint32),
		symAddrToFunc:         make(map[uint64]uint32),
		libNameToResource:     make(map[string]uint32),
		frameKeyToFrame:       make(map[uint64]uint32),
		stackKeyToStack:       make(map[uint64]int32),
		minTime:               math.MaxInt64,
		maxTime:               math.MinInt64,
	}
}

func nsToMs(ns int64) float64 {
	return float64(ns) / 1e6
}

func (t *ThreadTables) observeTime(ns int64) {
	if ns < t.minTime {
		t.minTime = ns
	}
	if ns > t.maxTime {
		t.maxTime = ns
	}
	t.sawTime = true
}

// RegisterTimeMs and UnregisterTimeMs are the thread's observed time span,
// in milliseconds. RegisterTimeMs defaults to 0 if nothing was observed.
func (t *ThreadTables) RegisterTimeMs() float64 {
	if !t.sawTime {
		return 0
	}
	return nsToMs(t.minTime)
}

func (t *ThreadTables) UnregisterTimeMs() float64 {
	if !t.sawTime {
		return 0
	}
	return nsToMs(t.maxTime)
}

func (t *ThreadTables) getOrCreateResource(st *strtab.Table, lt *libtable.Table, libName string) uint32 {
	if idx, ok := t.libNameToResource[libName]; ok {
		return idx
	}
	idx := uint32(len(t.resources))
	t.resources = append(t.resources, resourceEntry{
		libIdx:  lt.Intern(libName, 0, 0),
		nameIdx: st.Intern(libName),
	})
	t.libNameToResource[libName] = idx
	return idx
}

func (t *ThreadTables) getOrCreateNativeSymbol(st *strtab.Table, lt *libtable.Table, symAddr uint64, name, imageName string, size uint32) uint32 {
	if idx, ok := t.symAddrToNativeSymbol[symAddr]; ok {
		if imageName != "" {
			lt.Intern(imageName, symAddr, size)
		}
		return idx
	}

	libIdx := int32(-1)
	if imageName != "" {
		lt.Intern(imageName, symAddr, size)
		libIdx = int32(t.getOrCreateResource(st, lt, imageName))
	}

	idx := uint32(len(t.nativeSymbols))
	t.nativeSymbols = append(t.nativeSymbols, nativeSymbolEntry{
		libIndex:     libIdx,
		address:      symAddr,
		nameIdx:      st.Intern(name),
		functionSize: size,
	})
	t.symAddrToNativeSymbol[symAddr] = idx
	return idx
}

func (t *ThreadTables) getOrCreateFunc(st *strtab.Table, symAddr uint64, name, fileName string, line uint32, resourceIdx int32) uint32 {
	if idx, ok := t.symAddrToFunc[symAddr]; ok {
		return idx
	}
	idx := uint32(len(t.funcs))
	t.funcs = append(t.funcs, funcEntry{
		nameIdx:     st.Intern(name),
		resourceIdx: resourceIdx,
		fileNameIdx: st.Intern(fileName),
		lineNumber:  line,
	})
	t.symAddrToFunc[symAddr] = idx
	return idx
}

// getOrCreateFrame interns one frame row, keyed by (symAddr, inlineDepth).
func (t *ThreadTables) getOrCreateFrame(st *strtab.Table, lt *libtable.Table, symAddr uint64, name, fileName string, line, column, inlineDepth uint32, imageName string, symSize uint32, category int) uint32 {
	frameKey := symAddr ^ (uint64(inlineDepth) << 48)
	if idx, ok := t.frameKeyToFrame[frameKey]; ok {
		return idx
	}

	resourceIdx := int32(-1)
	if imageName != "" {
		resourceIdx = int32(t.getOrCreateResource(st, lt, imageName))
	}

	funcIdx := t.getOrCreateFunc(st, symAddr, name, fileName, line, resourceIdx)
	nativeSymbolIdx := t.getOrCreateNativeSymbol(st, lt, symAddr, name, imageName, symSize)

	idx := uint32(len(t.frames))
	t.frames = append(t.frames, frameEntry{
		funcIdx:         funcIdx,
		nativeSymbolIdx: nativeSymbolIdx,
		category:        category,
		address:         int64(symAddr),
		line:            line,
		column:          column,
		inlineDepth:     inlineDepth,
	})
	t.frameKeyToFrame[frameKey] = idx
	return idx
}

// getOrCreateStack interns one (prefix, frame) stack row. prefix of -1
// means "no prefix" (this is a root stack).
func (t *ThreadTables) getOrCreateStack(prefix int32, frame uint32) int32 {
	key := uint64(prefix+1)<<32 | uint64(frame)
	if idx, ok := t.stackKeyToStack[key]; ok {
		return idx
	}
	idx := int32(len(t.stacks))
	t.stacks = append(t.stacks, stackEntry{prefix: prefix, frame: frame})
	t.stackKeyToStack[key] = idx
	return idx
}
