package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/journey/motion"
	"github.com/milk9111/journey/paths"
	"github.com/milk9111/journey/prefabs"
	"github.com/milk9111/journey/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefault(t *testing.T) *prefabs.Journey {
	t.Helper()
	j, err := prefabs.LoadJourney("")
	require.NoError(t, err)
	return j
}

func TestReportListsCurvesAndCheckpoints(t *testing.T) {
	j := loadDefault(t)
	out := report("journey.yaml", j)

	assert.Contains(t, out, "journey.yaml")
	assert.Contains(t, out, "island")
	assert.Contains(t, out, "cp-8")
	assert.Contains(t, out, "isle-1")
	assert.Contains(t, out, "ok: 2 curves, 9 checkpoints, 2 signs, 3 markers")
}

func TestValidateCommand(t *testing.T) {
	var out bytes.Buffer
	validateCmd.SetOut(&out)
	defer validateCmd.SetOut(nil)

	require.NoError(t, runValidate(validateCmd, []string{"journey.yaml"}))
	assert.Contains(t, out.String(), "9 checkpoints")

	out.Reset()
	assert.Error(t, runValidate(validateCmd, []string{"does-not-exist.yaml"}))
	assert.Contains(t, out.String(), "invalid")
}

func TestTableAlignsColumns(t *testing.T) {
	out := table([]string{"a", "bb"}, [][]string{{"long", "x"}, {"y"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 0, strings.Index(lines[1], "long"))
	assert.Equal(t, strings.Index(lines[0], "bb"), strings.Index(lines[1], "x"))
}

func TestSampleRows(t *testing.T) {
	j := loadDefault(t)
	c, ok := j.Registry.Curve(paths.Island)
	require.True(t, ok)

	total := c.TotalLength()
	rows, err := sampleRows(c, total/4)
	require.NoError(t, err)
	// float steps may leave a short final row before the clamped end
	assert.GreaterOrEqual(t, len(rows), 5)
	assert.LessOrEqual(t, len(rows), 6)
	assert.Equal(t, "0.00", rows[0][0])

	end := c.PositionAt(total)
	last := rows[len(rows)-1]
	assert.Equal(t, fmt.Sprintf("%.2f", total), last[0])
	assert.Equal(t, fmt.Sprintf("%.2f", end.X), last[1])
	assert.Equal(t, fmt.Sprintf("%.2f", end.Y), last[2])

	_, err = sampleRows(c, 0)
	assert.Error(t, err)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, 5, strings.Count(progressBar(50, 100, 10), "="))
	assert.Equal(t, 10, strings.Count(progressBar(150, 100, 10), "="))
	assert.Equal(t, 10, strings.Count(progressBar(1, 0, 10), "-"))
	assert.Empty(t, progressBar(1, 1, 0))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWalkModelKeys(t *testing.T) {
	m, err := newWalkModel(loadDefault(t))
	require.NoError(t, err)

	m.Update(keyMsg("right"))
	assert.Equal(t, motion.Intent{Forward: true}, m.intent)
	m.Update(keyMsg("a"))
	assert.Equal(t, motion.Intent{Backward: true}, m.intent)
	m.Update(keyMsg("s"))
	assert.Equal(t, motion.Intent{}, m.intent)

	m.Update(keyMsg("e"))
	assert.True(t, m.interact)
	in := m.poll()
	assert.True(t, in.Interact)
	assert.False(t, m.interact)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWalkModelTicksDriveSession(t *testing.T) {
	m, err := newWalkModel(loadDefault(t))
	require.NoError(t, err)

	t0 := time.Unix(0, 0)
	_, cmd := m.Update(walkTickMsg(t0))
	assert.NotNil(t, cmd)
	m.Update(walkTickMsg(t0.Add(30 * time.Millisecond)))
	assert.Equal(t, 2, m.snap.Frame)

	view := m.View()
	assert.Contains(t, view, m.journey.Spec.Name)
	assert.Contains(t, view, "memories 0/8")
}

func TestWalkModelGate(t *testing.T) {
	m, err := newWalkModel(loadDefault(t))
	require.NoError(t, err)

	// pretend the session opened the main gate
	m.snap.Modal = scene.ModalGate
	m.snap.Gate = scene.GateMainEnd
	assert.Contains(t, m.View(), "Unlock the island?")

	m.Update(keyMsg("right"))
	assert.Equal(t, motion.Intent{}, m.intent, "walking keys are ignored behind a gate")

	m.Update(keyMsg("n"))
	assert.Equal(t, scene.ModalNone, m.snap.Modal)
}

func TestDescribeEvents(t *testing.T) {
	assert.Equal(t, "main -> island", describe(scene.Event{
		Type: scene.EventSceneChanged,
		Data: scene.SceneChanged{From: scene.Main, To: scene.Island},
	}))
	assert.Equal(t, "gate main_end", describe(scene.Event{
		Type: scene.EventOpenGate,
		Data: scene.OpenGate{Gate: scene.GateMainEnd},
	}))
	assert.Empty(t, describe(scene.Event{}))
}
