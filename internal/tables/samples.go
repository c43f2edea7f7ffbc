package tables

import (
	"sort"

	"github.com/fxprof/fxexport/internal/libtable"
	"github.com/fxprof/fxexport/internal/strtab"
	"github.com/fxprof/fxexport/internal/trace"
)

func isKernelAddress(addr uint64) bool {
	return addr>>63 != 0
}

// buildStack resolves one callstack id into a (possibly newly interned)
// stack row, walking frames outermost-first so prefix chains grow from
// root to leaf. categoryFor resolves the per-frame category (kernel vs.
// user); pass a constant func for callers (allocations) that use one fixed
// category regardless of address.
func (t *ThreadTables) buildStack(r trace.Reader, csID uint32, st *strtab.Table, lt *libtable.Table, categoryFor func(addr uint64) int) int32 {
	if csID == 0 {
		return -1
	}
	callstack := r.Callstack(csID)
	if len(callstack) == 0 {
		return -1
	}

	stackIdx := int32(-1)

	for i := len(callstack); i > 0; i-- {
		frameID := callstack[i-1]
		frameData := r.CallstackFrame(frameID)
		if frameData == nil {
			continue
		}

		canonicalAddr := r.CanonicalPointer(frameID)
		category := categoryFor(canonicalAddr)
		imageName := frameData.ImageName

		for j := len(frameData.Data); j > 0; j-- {
			sub := frameData.Data[j-1]

			symSize := uint32(0)
			if size, ok := r.SymbolSize(sub.SymAddr); ok {
				symSize = size
			}

			inlineDepth := uint32(len(frameData.Data) - j)

			frameIdx := t.getOrCreateFrame(st, lt, sub.SymAddr, sub.Name, sub.File, sub.Line, 0, inlineDepth, imageName, symSize, category)
			stackIdx = t.getOrCreateStack(stackIdx, frameIdx)
		}
	}

	return stackIdx
}

// CollectSamples walks a thread's callstack-sample stream and appends one
// sample row per sample carrying a nonzero, resolvable callstack.
func (t *ThreadTables) CollectSamples(r trace.Reader, samples []trace.Sample, st *strtab.Table, lt *libtable.Table, userCategory, kernelCategory int) {
	categoryFor := func(addr uint64) int {
		if isKernelAddress(addr) {
			return kernelCategory
		}
		return userCategory
	}

	for _, s := range samples {
		if s.CallstackID == 0 {
			continue
		}
		callstack := r.Callstack(s.CallstackID)
		if len(callstack) == 0 {
			continue
		}

		t.observeTime(s.TimeNs)

		stackIdx := t.buildStack(r, s.CallstackID, st, lt, categoryFor)

		t.samples = append(t.samples, sampleEntry{
			timeMs:   nsToMs(s.TimeNs),
			stackIdx: stackIdx,
			weight:   1.0,
		})
	}
}

// CollectAllocations walks every memory namespace's event stream and
// appends an allocation row for each alloc, and another for its paired
// free if the allocation was freed during the capture. Results are
// stable-sorted by time afterward.
func (t *ThreadTables) CollectAllocations(r trace.Reader, namespaces map[string][]trace.MemEvent, st *strtab.Table, lt *libtable.Table, category int) {
	fixedCategory := func(uint64) int { return category }

	for _, events := range namespaces {
		for _, ev := range events {
			t.observeTime(ev.AllocTimeNs)

			allocStack := t.buildStack(r, ev.CallstackAlloc, st, lt, fixedCategory)
			t.allocations = append(t.allocations, allocationEntry{
				timeMs:        nsToMs(ev.AllocTimeNs),
				weight:        ev.Size,
				stackIdx:      allocStack,
				memoryAddress: ev.Ptr,
				threadID:      ev.ThreadAlloc,
			})

			if ev.FreeTimeNs >= 0 {
				t.observeTime(ev.FreeTimeNs)

				freeStack := t.buildStack(r, ev.CallstackFree, st, lt, fixedCategory)
				t.allocations = append(t.allocations, allocationEntry{
					timeMs:        nsToMs(ev.FreeTimeNs),
					weight:        -ev.Size,
					stackIdx:      freeStack,
					memoryAddress: ev.Ptr,
					threadID:      ev.ThreadFree,
				})
			}
		}
	}

	sort.SliceStable(t.allocations, func(i, j int) bool {
		return t.allocations[i].timeMs < t.allocations[j].timeMs
	})
}
