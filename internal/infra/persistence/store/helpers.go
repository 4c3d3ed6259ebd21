package store

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tapadmin/internal/domain/repository"
)

// toFirestoreUpdates converts targeted field updates into Firestore update
// operations. Dotted paths become field paths so a sibling nested field is
// never clobbered by a whole-map merge.
func toFirestoreUpdates(updates []repository.FieldUpdate) []firestore.Update {
	out := make([]firestore.Update, 0, len(updates))
	for _, u := range updates {
		out = append(out, firestore.Update{Path: u.Path, Value: u.Value})
	}

	return out
}

// isNotFound reports whether a Firestore error means the document does not
// exist.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
