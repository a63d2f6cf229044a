package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTeamAlreadyExists is returned when an attempt to create a team
	// fails because a team with the same account ID is already configured.
	ErrTeamAlreadyExists = errors.New("team already exists")

	// ErrTeamNotFound is returned when a query or update targets a team
	// (identified by account ID) that does not exist in the database.
	ErrTeamNotFound = errors.New("team was not found")

	// ErrIdentityKeyNotFound is returned when no identity key pair has been
	// generated and persisted yet for this install.
	ErrIdentityKeyNotFound = errors.New("identity key pair was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrSealingKey is returned when at-rest encryption or decryption of a
	// stored private key fails.
	ErrSealingKey = errors.New("failed to seal or open stored key")
)
