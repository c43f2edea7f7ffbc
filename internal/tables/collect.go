package tables

import (
	"github.com/fxprof/fxexport/internal/colors"
	"github.com/fxprof/fxexport/internal/strtab"
	"github.com/fxprof/fxexport/internal/trace"
)

// CollectZones walks a thread's top-level zone list, recursing into
// children, and appends one TracyZone marker per zone with a valid end.
func (t *ThreadTables) CollectZones(zones []trace.Zone, st *strtab.Table, category int) {
	for i := range zones {
		t.collectZone(&zones[i], st, category)
	}
}

func (t *ThreadTables) collectZone(zone *trace.Zone, st *strtab.Table, category int) {
	if !zone.EndValid {
		return
	}

	t.observeTime(zone.StartNs)
	t.observeTime(zone.EndNs)

	data := map[string]any{
		"type": "TracyZone",
		"name": st.Intern(zone.Name),
	}
	if zone.Text != "" {
		data["text"] = st.Intern(zone.Text)
	}
	if zone.HasColor {
		if name, ok := colors.FromRGB(zone.Color); ok {
			data["color"] = name
		}
	}
	if zone.File != "" {
		data["file"] = st.Intern(zone.File)
		data["line"] = zone.Line
	}
	if zone.Function != "" {
		data["function"] = st.Intern(zone.Function)
	}

	t.markers = append(t.markers, markerEntry{
		category: category,
		nameIdx:  st.Intern("TracyZone"),
		startMs:  nsToMs(zone.StartNs),
		endMs:    nsToMs(zone.EndNs),
		phase:    PhaseInterval,
		data:     data,
	})

	if len(zone.Children) > 0 {
		t.CollectZones(zone.Children, st, category)
	}
}

// CollectGPUZones walks a GPU thread's top-level zone list, recursing into
// children, and appends one TracyGpuZone marker per zone with a valid GPU
// end time.
func (t *ThreadTables) CollectGPUZones(zones []trace.GPUZone, st *strtab.Table, category int) {
	for i := range zones {
		t.collectGPUZone(&zones[i], st, category)
	}
}

func (t *ThreadTables) collectGPUZone(zone *trace.GPUZone, st *strtab.Table, category int) {
	if zone.GPUEndNs < 0 {
		return
	}

	t.observeTime(zone.GPUStartNs)
	t.observeTime(zone.GPUEndNs)

	data := map[string]any{
		"type":     "TracyGpuZone",
		"name":     st.Intern(zone.Name),
		"gpuStart": nsToMs(zone.GPUStartNs),
		"gpuEnd":   nsToMs(zone.GPUEndNs),
		"cpuStart": nsToMs(zone.CPUStartNs),
		"cpuEnd":   nsToMs(zone.CPUEndNs),
	}
	if zone.File != "" {
		data["file"] = st.Intern(zone.File)
		data["line"] = zone.Line
	}
	if zone.Function != "" {
		data["function"] = st.Intern(zone.Function)
	}

	t.markers = append(t.markers, markerEntry{
		category: category,
		nameIdx:  st.Intern("TracyGpuZone"),
		startMs:  nsToMs(zone.GPUStartNs),
		endMs:    nsToMs(zone.GPUEndNs),
		phase:    PhaseInterval,
		data:     data,
	})

	if len(zone.Children) > 0 {
		t.CollectGPUZones(zone.Children, st, category)
	}
}

// CollectMessages appends one instant TracyMessage marker for every message
// addressed to threadID.
func (t *ThreadTables) CollectMessages(messages []trace.Message, threadID uint64, st *strtab.Table, category int) {
	for _, msg := range messages {
		if msg.ThreadID != threadID {
			continue
		}

		t.observeTime(msg.TimeNs)

		data := map[string]any{
			"type": "TracyMessage",
			"text": st.Intern(msg.Text),
		}
		if msg.Color != 0 {
			if name, ok := colors.FromRGB(msg.Color); ok {
				data["color"] = name
			}
		}

		t.markers = append(t.markers, markerEntry{
			category: category,
			nameIdx:  st.Intern("TracyMessage"),
			startMs:  nsToMs(msg.TimeNs),
			endMs:    nsToMs(msg.TimeNs),
			phase:    PhaseInstant,
			data:     data,
		})
	}
}

// CollectLocks walks every lock whose thread bitmap includes threadID and
// emits one interval marker per wait→obtain pair observed on that thread.
func (t *ThreadTables) CollectLocks(locks map[uint64]*trace.Lock, threadID uint64, st *strtab.Table, category int) {
	for lockID, lock := range locks {
		bit, ok := lock.ThreadBits[threadID]
		if !ok {
			continue
		}

		lockName := lock.CustomName
		if lockName == "" {
			lockName = lock.SrcLocFunction
		}

		waitStart := int64(-1)
		waiting := false

		for _, ev := range lock.Timeline {
			if ev.ThreadBit != bit {
				continue
			}

			t.observeTime(ev.TimeNs)

			switch ev.Type {
			case trace.LockWait, trace.LockWaitShared:
				waitStart = ev.TimeNs
				waiting = true
			case trace.LockObtain, trace.LockObtainShared:
				if waiting {
					operation := "wait"
					if ev.Type == trace.LockObtainShared {
						operation = "wait_shared"
					}
					data := map[string]any{
						"type":      "TracyLock",
						"name":      st.Intern(lockName),
						"lockId":    lockID,
						"operation": operation,
					}
					t.markers = append(t.markers, markerEntry{
						category: category,
						nameIdx:  st.Intern("TracyLock"),
						startMs:  nsToMs(waitStart),
						endMs:    nsToMs(ev.TimeNs),
						phase:    PhaseInterval,
						data:     data,
					})
					waiting = false
					waitStart = -1
				}
			case trace.LockRelease, trace.LockReleaseShared:
				// no-op
			}
		}
	}
}

// CollectFrameMarkers walks a document's primary frame series and emits one
// TracyFrame interval marker per frame with a valid (non-negative) end.
func (t *ThreadTables) CollectFrameMarkers(series *trace.FrameSeries, st *strtab.Table, category int) {
	if series == nil {
		return
	}

	nameIdx := st.Intern(series.Name)
	for i, fr := range series.Frames {
		if fr.EndNs < 0 {
			continue
		}

		t.observeTime(fr.StartNs)
		t.observeTime(fr.EndNs)

		durationMs := nsToMs(fr.EndNs - fr.StartNs)
		fps := 0.0
		if durationMs > 0 {
			fps = 1000.0 / durationMs
		}

		data := map[string]any{
			"type":        "TracyFrame",
			"name":        nameIdx,
			"frameNumber": i,
			"duration":    durationMs,
			"fps":         fps,
		}

		t.markers = append(t.markers, markerEntry{
			category: category,
			nameIdx:  st.Intern("TracyFrame"),
			startMs:  nsToMs(fr.StartNs),
			endMs:    nsToMs(fr.EndNs),
			phase:    PhaseInterval,
			data:     data,
		})
	}
}
