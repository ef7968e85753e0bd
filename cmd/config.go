package cmd

// Config carries the runtime configuration of the admin backend, loaded from
// the environment by cmd/app.
type Config struct {
	HTTPPort string

	// StoreDriver selects the document store backend: "firestore" for the
	// hosted database, "memory" for local development and smoke testing.
	StoreDriver string

	FirestoreProjectID   string
	FirestoreCredentials string
}
