package stage

import (
	"github.com/teslashibe/go-ornament/pkg/gesture"
	"github.com/teslashibe/go-ornament/pkg/scene"
)

// State is a point-in-time snapshot of the stage for the dashboard.
type State struct {
	Mode           string         `json:"mode"`
	Objects        int            `json:"objects"`
	Photos         int            `json:"photos"`
	FocusID        string         `json:"focus_id,omitempty"`
	GestureEnabled bool           `json:"gesture_enabled"`
	Hand           gesture.Signal `json:"hand"`
	Orientation    scene.Vec3     `json:"orientation"`
}

// Snapshot captures the current stage state. The gesture-enabled flag lives
// on the classifier, so the director stitches it in; called directly this
// reports it false.
func (s *Stage) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := 0
	for _, o := range s.objects {
		if o.Role == scene.RolePhoto {
			photos++
		}
	}

	st := State{
		Mode:        s.mode.String(),
		Objects:     len(s.objects),
		Photos:      photos,
		Hand:        s.hand,
		Orientation: s.orient.Current(),
	}
	if s.focus != nil {
		st.FocusID = s.focus.ID.String()
	}
	return st
}
