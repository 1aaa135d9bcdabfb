package firestore

import (
	"go.uber.org/fx"
)

// Module provides the Firestore repositories.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewProfileRepository,
		NewSavedPlaceRepository,
	),
)
