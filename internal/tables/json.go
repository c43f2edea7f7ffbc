package tables

import "github.com/fxprof/fxexport/internal/format"

func intOrNil(v uint32) any {
	if v > 0 {
		return v
	}
	return nil
}

func stackRefOrNil(idx int32) any {
	if idx >= 0 {
		return idx
	}
	return nil
}

// FrameTableJSON serializes the frame table.
func (t *ThreadTables) FrameTableJSON() format.FrameTable {
	out := format.FrameTable{
		Length:        len(t.frames),
		Address:       make([]int64, len(t.frames)),
		Category:      make([]int, len(t.frames)),
		Subcategory:   make([]any, len(t.frames)),
		Func:          make([]int, len(t.frames)),
		NativeSymbol:  make([]int, len(t.frames)),
		InnerWindowID: make([]any, len(t.frames)),
		Line:          make([]any, len(t.frames)),
		Column:        make([]any, len(t.frames)),
		InlineDepth:   make([]int, len(t.frames)),
	}
	for i, f := range t.frames {
		out.Address[i] = f.address
		out.Category[i] = f.category
		out.Func[i] = int(f.funcIdx)
		out.NativeSymbol[i] = int(f.nativeSymbolIdx)
		out.Line[i] = intOrNil(f.line)
		out.Column[i] = intOrNil(f.column)
		out.InlineDepth[i] = int(f.inlineDepth)
	}
	return out
}

// FuncTableJSON serializes the function table.
func (t *ThreadTables) FuncTableJSON() format.FuncTable {
	out := format.FuncTable{
		Length:        len(t.funcs),
		Name:          make([]int, len(t.funcs)),
		IsJS:          make([]bool, len(t.funcs)),
		RelevantForJS: make([]bool, len(t.funcs)),
		Resource:      make([]int, len(t.funcs)),
		FileName:      make([]int, len(t.funcs)),
		LineNumber:    make([]any, len(t.funcs)),
		ColumnNumber:  make([]any, len(t.funcs)),
	}
	for i, f := range t.funcs {
		out.Name[i] = int(f.nameIdx)
		out.Resource[i] = int(f.resourceIdx)
		out.FileName[i] = int(f.fileNameIdx)
		out.LineNumber[i] = intOrNil(f.lineNumber)
		out.ColumnNumber[i] = intOrNil(f.columnNumber)
	}
	return out
}

// NativeSymbolsJSON serializes the native-symbol table.
func (t *ThreadTables) NativeSymbolsJSON() format.NativeSymbolTable {
	out := format.NativeSymbolTable{
		Length:       len(t.nativeSymbols),
		LibIndex:     make([]int, len(t.nativeSymbols)),
		Address:      make([]int64, len(t.nativeSymbols)),
		Name:         make([]int, len(t.nativeSymbols)),
		FunctionSize: make([]any, len(t.nativeSymbols)),
	}
	for i, ns := range t.nativeSymbols {
		out.LibIndex[i] = int(ns.libIndex)
		out.Address[i] = int64(ns.address)
		out.Name[i] = int(ns.nameIdx)
		out.FunctionSize[i] = intOrNil(ns.functionSize)
	}
	return out
}

// ResourceTableJSON serializes the resource table. type is always 1
// (library) and host is always null — this tool never resolves a resource
// to a remote origin.
func (t *ThreadTables) ResourceTableJSON() format.ResourceTable {
	out := format.ResourceTable{
		Length: len(t.resources),
		Lib:    make([]int, len(t.resources)),
		Name:   make([]int, len(t.resources)),
		Host:   make([]any, len(t.resources)),
		Type:   make([]int, len(t.resources)),
	}
	for i, r := range t.resources {
		out.Lib[i] = int(r.libIdx)
		out.Name[i] = int(r.nameIdx)
		out.Type[i] = 1
	}
	return out
}

// StackTableJSON serializes the stack table.
func (t *ThreadTables) StackTableJSON() format.StackTable {
	out := format.StackTable{
		Length: len(t.stacks),
		Prefix: make([]any, len(t.stacks)),
		Frame:  make([]int, len(t.stacks)),
	}
	for i, s := range t.stacks {
		if s.prefix >= 0 {
			out.Prefix[i] = s.prefix
		}
		out.Frame[i] = int(s.frame)
	}
	return out
}

// SamplesJSON serializes the samples table, delta-encoding time.
func (t *ThreadTables) SamplesJSON() format.SamplesTable {
	out := format.SamplesTable{
		Length:         len(t.samples),
		Stack:          make([]any, len(t.samples)),
		TimeDeltas:     make([]float64, len(t.samples)),
		Weight:         make([]float64, len(t.samples)),
		WeightType:     "samples",
		ThreadCPUDelta: make([]any, len(t.samples)),
	}
	prev := 0.0
	for i, s := range t.samples {
		out.Stack[i] = stackRefOrNil(s.stackIdx)
		out.TimeDeltas[i] = s.timeMs - prev
		out.Weight[i] = s.weight
		prev = s.timeMs
	}
	return out
}

// NativeAllocationsJSON serializes the allocation table, nil if empty.
func (t *ThreadTables) NativeAllocationsJSON() *format.NativeAllocationsTable {
	if len(t.allocations) == 0 {
		return nil
	}
	out := &format.NativeAllocationsTable{
		Length:        len(t.allocations),
		Time:          make([]float64, len(t.allocations)),
		Weight:        make([]int64, len(t.allocations)),
		WeightType:    "bytes",
		Stack:         make([]any, len(t.allocations)),
		MemoryAddress: make([]uint64, len(t.allocations)),
		ThreadID:      make([]uint64, len(t.allocations)),
	}
	for i, a := range t.allocations {
		out.Time[i] = a.timeMs
		out.Weight[i] = a.weight
		out.Stack[i] = stackRefOrNil(a.stackIdx)
		out.MemoryAddress[i] = a.memoryAddress
		out.ThreadID[i] = a.threadID
	}
	return out
}

// MarkersJSON serializes the markers table.
func (t *ThreadTables) MarkersJSON() format.MarkersTable {
	out := format.MarkersTable{
		Length:    len(t.markers),
		Category:  make([]int, len(t.markers)),
		Data:      make([]any, len(t.markers)),
		Name:      make([]int, len(t.markers)),
		StartTime: make([]float64, len(t.markers)),
		EndTime:   make([]float64, len(t.markers)),
		Phase:     make([]int, len(t.markers)),
	}
	for i, m := range t.markers {
		out.Category[i] = m.category
		out.Data[i] = m.data
		out.Name[i] = int(m.nameIdx)
		out.StartTime[i] = m.startMs
		out.EndTime[i] = m.endMs
		out.Phase[i] = int(m.phase)
	}
	return out
}
