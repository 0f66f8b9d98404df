package scene

import (
	"math"

	"github.com/milk9111/journey/paths"
)

func motionSystem(s *Session) {
	c, t := s.active()
	t.Advance(s.in.Intent, s.dt, c)
}

// reversalSystem walks back off the start of the island onto the end of the
// main path.
func reversalSystem(s *Session) {
	if s.state != OnSecondaryPath || s.in.Intent.Net() >= 0 {
		return
	}
	if s.travel[Island].S > s.cfg.ReverseEpsilon {
		return
	}
	main := s.curves[Main]
	t := s.travel[Main]
	t.Place(main.TotalLength()-s.cfg.ReturnOffset, main)
	t.Facing = t.Facing.Neg()
	s.setState(OnMainPath)
	s.switchScene(Main)
}

func proximitySystem(s *Session) {
	s.position = s.worldPosition()
	s.nearest = nil
	s.nearestDist = math.Inf(1)

	var best = math.Inf(1)
	var bestIdx = -1
	cps := s.idx.ForCurve(s.scene.Curve())
	for i, cpt := range cps {
		if d := s.position.Distance(cpt.Pos); d < best {
			best = d
			bestIdx = i
		}
	}
	if bestIdx >= 0 && best < s.cfg.InteractRadius {
		s.nearest = cps[bestIdx]
		s.nearestDist = best
	}
}

// passedSystem rebuilds the passed set from the main traveler position every
// frame, so walking backward un-passes checkpoints.
func passedSystem(s *Session) {
	clear(s.passed)
	mainS := s.travel[Main].S
	for _, cpt := range s.idx.ForCurve(paths.Main) {
		if mainS >= cpt.S {
			s.passed[cpt.ID] = struct{}{}
		}
	}
}

// interactSystem opens the nearby checkpoint once per key press. A press
// stays armed until it is consumed or released, so holding the key while
// walking into range still opens exactly one popup.
func interactSystem(s *Session) {
	pressed := s.in.Interact
	if pressed && !s.interactHeld {
		s.interactArmed = true
	}
	if !pressed {
		s.interactArmed = false
	}
	s.interactHeld = pressed

	if !s.interactArmed || s.nearest == nil || s.modal != ModalNone {
		return
	}
	s.interactArmed = false
	s.modal = ModalCheckpoint
	s.open = s.nearest
	s.events.Push(Event{Type: EventOpenCheckpoint, Data: OpenCheckpoint{Checkpoint: s.open}})
	s.logf("open checkpoint %s", s.open.ID)
}

func endOfPathSystem(s *Session) {
	// an arrival under an open checkpoint popup is handled once it closes
	if s.modal == ModalCheckpoint {
		return
	}

	c, t := s.active()
	atEnd := s.atEnd()
	rising := atEnd && !s.wasAtEnd
	s.wasAtEnd = atEnd

	if s.scene == Island {
		if t.S < c.TotalLength()-s.cfg.IslandEndHysteresis {
			s.islandEndArmed = true
		}
		if !rising || !s.islandEndArmed || s.modal == ModalGate {
			return
		}
		s.islandEndArmed = false
		s.openGate(SecondaryEndGate, GateIslandEnd)
		return
	}

	if !rising || s.modal == ModalGate {
		return
	}
	if !s.unlocked {
		s.openGate(PopupGate, GateMainEnd)
		return
	}
	if _, ok := s.curves[Island]; !ok {
		return
	}
	s.travel[Island].Place(0, s.curves[Island])
	s.islandEndArmed = true
	s.setState(OnSecondaryPath)
	s.switchScene(Island)
	proximitySystem(s)
}

func (s *Session) openGate(st State, kind GateKind) {
	s.setState(st)
	s.modal = ModalGate
	s.gate = kind
	s.events.Push(Event{Type: EventOpenGate, Data: OpenGate{Gate: kind}})
}
