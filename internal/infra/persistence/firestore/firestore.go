// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection       = "users"
	savedPlacesCollection = "saved_places"
)

func userDoc(client *firestore.Client, uid string) *firestore.DocumentRef {
	return client.Collection(usersCollection).Doc(uid)
}

func savedPlaces(client *firestore.Client, uid string) *firestore.CollectionRef {
	return userDoc(client, uid).Collection(savedPlacesCollection)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isListenerStopped reports whether a snapshot listener ended because its context did.
func isListenerStopped(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	code := status.Code(err)

	return code == codes.Canceled || code == codes.DeadlineExceeded
}
