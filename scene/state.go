package scene

import (
	"github.com/milk9111/journey/motion"
	"github.com/milk9111/journey/paths"
)

// Scene is the map the traveler is on.
type Scene string

const (
	Main   Scene = "main"
	Island Scene = "island"
)

// Curve is the path a scene walks along.
func (sc Scene) Curve() paths.Name {
	if sc == Island {
		return paths.Island
	}
	return paths.Main
}

// State is the position of the session in the scene state machine.
type State int

const (
	OnMainPath State = iota
	PopupGate
	OnSecondaryPath
	SecondaryEndGate
)

func (st State) String() string {
	switch st {
	case OnMainPath:
		return "OnMainPath"
	case PopupGate:
		return "PopupGate"
	case OnSecondaryPath:
		return "OnSecondaryPath"
	case SecondaryEndGate:
		return "SecondaryEndGate"
	default:
		return "Unknown"
	}
}

// Modal is what, if anything, currently blocks the state machine.
type Modal int

const (
	ModalNone Modal = iota
	ModalCheckpoint
	ModalGate
)

// GateKind identifies an end-of-path popup.
type GateKind string

const (
	// GateMainEnd asks whether to unlock the island.
	GateMainEnd GateKind = "main_end"
	// GateIslandEnd is an informational notice at the end of the island.
	GateIslandEnd GateKind = "island_end"
)

// Resolution is what the popup collaborator reports when a gate closes.
type Resolution string

const (
	Unlocked  Resolution = "unlocked"
	Dismissed Resolution = "dismissed"
)

// Input is everything the core reads from the input collaborator in a frame.
type Input struct {
	Intent   motion.Intent
	Interact bool
}
