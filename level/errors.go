package level

import "go.trai.ch/zerr"

var (
	// ErrNoFloors is returned by LoadAll when the directory holds no .tmx files.
	ErrNoFloors = zerr.New("no .tmx files found")

	// ErrDuplicateName is returned when two siblings in a TMX file share a name.
	ErrDuplicateName = zerr.New("duplicate node name in TMX")
)
