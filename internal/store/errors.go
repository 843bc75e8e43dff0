package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a query expected to match a mirrored
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPageNotFound is returned when a query or write targets a legacy
	// page (by slug, page_id, or owner) that does not exist in the database.
	ErrPageNotFound = errors.New("legacy page was not found")

	// ErrPageAlreadyExists is returned when an INSERT into legacy_pages
	// collides on the owner uniqueness constraint: the user already has a
	// page. This closes the race between two concurrent creates for the
	// same owner.
	ErrPageAlreadyExists = errors.New("user already has a legacy page")

	// ErrSlugAlreadyExists is returned when an INSERT or UPDATE collides on
	// the slug uniqueness constraint: the requested URL key belongs to
	// another page.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrPassingWithoutTransition is returned when a write trips the
	// passing_requires_transition check: a date of passing may only be
	// stored on a page whose honouree has transitioned.
	ErrPassingWithoutTransition = errors.New("date of passing requires has_transitioned")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
