package session

import (
	"context"

	"reelview/internal/core"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "reelview"

// Env reads the signed-in viewer from REELVIEW_VIEWER_* variables. An empty
// REELVIEW_VIEWER_ID means an anonymous session.
type Env struct {
	ViewerID    string `envconfig:"VIEWER_ID"`
	ViewerName  string `envconfig:"VIEWER_NAME"`
	ViewerImage string `envconfig:"VIEWER_IMAGE"`
}

func (e *Env) Init(_ context.Context) error {
	return envconfig.Process(envPrefix, e)
}

func (e *Env) Viewer() (core.Viewer, bool) {
	if e.ViewerID == "" {
		return core.Viewer{}, false
	}

	return core.Viewer{
		ID:       e.ViewerID,
		UserName: e.ViewerName,
		Image:    e.ViewerImage,
	}, true
}

// Static is a fixed session, nil means anonymous.
type Static struct {
	V *core.Viewer
}

func (s Static) Viewer() (core.Viewer, bool) {
	if s.V == nil {
		return core.Viewer{}, false
	}
	return *s.V, true
}

func Anonymous() core.Session {
	return Static{}
}

func As(viewer core.Viewer) core.Session {
	return Static{V: &viewer}
}
